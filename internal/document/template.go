package document

import (
	"fmt"
	"strings"
	"time"

	"sogrinha/internal/model"
)

const (
	blankLine  = "______________________"
	footerText = "Este documento é parte integrante do sistema de gestão imobiliária."
)

type section struct {
	Title string
	Body  string
}

type signature struct {
	Role string
	Name string
}

// content is the filled template, independent of the output format.
type content struct {
	Title      string
	Number     string
	Date       string
	Sections   []section
	CityDate   string
	Signatures []signature
	Footer     string
}

func buildContent(data ContractData, now time.Time) (*content, error) {
	c := data.Contract
	owner := data.Owner

	var lessee *model.Party
	if data.Lessee != nil {
		lessee = &data.Lessee.Party
	}

	var (
		title         string
		ownerRole     string
		counterRole   string
		objectSubject string
		sections      []section
	)

	switch {
	case c.Kind.IsRental():
		title = "CONTRATO DE LOCAÇÃO DE IMÓVEL"
		ownerRole, counterRole, objectSubject = "LOCADOR", "LOCATÁRIO", "O LOCADOR"
	case c.Kind.IsSale():
		title = "CONTRATO DE COMPRA E VENDA DE IMÓVEL"
		ownerRole, counterRole, objectSubject = "VENDEDOR", "COMPRADOR", "O VENDEDOR"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, c.Kind)
	}

	sections = append(sections,
		section{
			Title: "1. DAS PARTES",
			Body:  partyClause(ownerRole, &owner.Party) + "\n\n" + partyClause(counterRole, lessee),
		},
		section{
			Title: "2. DO OBJETO",
			Body:  objectClause(objectSubject, data.RealEstate),
		},
	)

	if c.Kind.IsRental() {
		sections = append(sections,
			section{
				Title: "3. DO PRAZO",
				Body: fmt.Sprintf("O prazo de locação é de %d meses, iniciando em %s e terminando em %s.",
					c.Duration, formatDate(c.StartDate), formatDate(c.EndDate)),
			},
			section{
				Title: "4. DO VALOR E FORMA DE PAGAMENTO",
				Body: fmt.Sprintf("O valor mensal do aluguel é de %s, a ser pago até o dia %d de cada mês.",
					formatCurrency(c.PaymentValue), c.PaymentDay),
			},
		)
		if c.Kind == model.ContractRentalWithAdmin {
			sections = append(sections, section{
				Title: "5. DA ADMINISTRAÇÃO",
				Body: "A administração do imóvel será realizada pela IMOBILIÁRIA, que ficará responsável pela gestão do contrato, " +
					"recebimento dos aluguéis, e intermediação entre LOCADOR e LOCATÁRIO.",
			})
		}
	} else {
		sections = append(sections, section{
			Title: "3. DO VALOR E FORMA DE PAGAMENTO",
			Body: fmt.Sprintf("O valor total da venda é de %s, a ser pago conforme condições estabelecidas neste contrato.",
				formatCurrency(c.PaymentValue)),
		})
	}

	counterName := blankLine
	if lessee != nil && strings.TrimSpace(lessee.FullName) != "" {
		counterName = lessee.FullName
	}

	longDate := formatDateLong(now)
	cityDate := longDate
	if owner.City != "" {
		cityDate = owner.City + ", " + longDate
	}

	return &content{
		Title:    title,
		Number:   "Contrato Nº: " + contractNumber(c, now),
		Date:     longDate,
		Sections: sections,
		CityDate: cityDate,
		Signatures: []signature{
			{Role: ownerRole, Name: owner.FullName},
			{Role: counterRole, Name: counterName},
			{Role: "TESTEMUNHA 1", Name: blankLine},
			{Role: "TESTEMUNHA 2", Name: blankLine},
		},
		Footer: footerText,
	}, nil
}

// partyClause qualifies one party. A nil party leaves the qualification blank for handwriting.
func partyClause(role string, p *model.Party) string {
	if p == nil || strings.TrimSpace(p.FullName) == "" {
		return role + ": " + blankLine + "."
	}
	return fmt.Sprintf("%s: %s, %s, portador do RG %s %s, inscrito no CPF %s, residente e domiciliado em %s.",
		role, p.FullName, p.MaritalStatus, p.RG, p.IssuingBody, p.CPF, addressLine(p.Address))
}

func objectClause(subject string, re *model.RealEstate) string {
	if re == nil {
		return fmt.Sprintf("%s declara ser proprietário e legítimo possuidor do imóvel situado em %s, registrado sob matrícula %s.",
			subject, blankLine, blankLine)
	}
	return fmt.Sprintf("%s declara ser proprietário e legítimo possuidor do imóvel situado em %s, registrado sob matrícula %s.",
		subject, addressLine(re.Address), re.MunicipalRegistration)
}

func addressLine(a model.Address) string {
	street := a.Street
	if a.Number != "" {
		street += ", " + a.Number
	}
	if a.Complement != "" {
		street += " " + a.Complement
	}
	return fmt.Sprintf("%s, %s, %s/%s, CEP %s", street, a.Neighborhood, a.City, a.State, a.CEP)
}
