package model

import "time"

// Address is the postal address block shared by parties and properties.
type Address struct {
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	CEP          string `json:"cep"`
}

// Party holds the personal data common to owners and lessees.
type Party struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	FullName      string    `json:"full_name"`
	MaritalStatus string    `json:"marital_status"`
	Profession    string    `json:"profession"`
	RG            string    `json:"rg"`
	IssuingBody   string    `json:"issuing_body"`
	CPF           string    `json:"cpf"`
	Cellphone     string    `json:"cellphone"`
	Email         string    `json:"email"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Address
}

// Owner is the property owner (landlord or seller).
type Owner struct {
	Party
}

// Lessee is the tenant or buyer.
type Lessee struct {
	Party
}

type RealEstateKind string

const (
	RealEstateHouse      RealEstateKind = "Casa"
	RealEstateApartment  RealEstateKind = "Apartamento"
	RealEstateOffices    RealEstateKind = "Salas comerciais"
	RealEstateStore      RealEstateKind = "Loja"
	RealEstateWarehouses RealEstateKind = "Galpão"
)

type RealEstateStatus string

const (
	RealEstateAvailable RealEstateStatus = "Disponível"
	RealEstateLeased    RealEstateStatus = "Alugado"
	RealEstateSold      RealEstateStatus = "Vendido"
	RealEstateCancelled RealEstateStatus = "Cancelado"
)

// RealEstate is a property unit.
type RealEstate struct {
	ID                    string           `json:"id"`
	UserID                string           `json:"user_id"`
	MunicipalRegistration string           `json:"municipal_registration"`
	Kind                  RealEstateKind   `json:"kind"`
	Status                RealEstateStatus `json:"status"`
	HasInspection         bool             `json:"has_inspection"`
	HasProofDocument      bool             `json:"has_proof_document"`
	OwnerID               string           `json:"owner_id"`
	LesseeID              string           `json:"lessee_id,omitempty"`
	Note                  string           `json:"note,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	Address
}

type ContractKind string

const (
	ContractSaleWithExclusivity    ContractKind = "Venda com exclusividade"
	ContractSaleWithoutExclusivity ContractKind = "Venda sem exclusividade"
	ContractRentalWithAdmin        ContractKind = "Locação com administração"
	ContractRental                 ContractKind = "Locação"
)

// IsRental reports whether k is one of the lease kinds.
func (k ContractKind) IsRental() bool {
	return k == ContractRental || k == ContractRentalWithAdmin
}

// IsSale reports whether k is one of the sale kinds.
func (k ContractKind) IsSale() bool {
	return k == ContractSaleWithExclusivity || k == ContractSaleWithoutExclusivity
}

// Abbreviation is the three-letter code used in contract identifiers.
func (k ContractKind) Abbreviation() string {
	switch k {
	case ContractSaleWithExclusivity:
		return "VDE"
	case ContractSaleWithoutExclusivity:
		return "VDS"
	case ContractRentalWithAdmin:
		return "ALA"
	case ContractRental:
		return "ALG"
	default:
		return "UNK"
	}
}

type ContractStatus string

const (
	ContractActive ContractStatus = "Ativo"
	ContractDone   ContractStatus = "Concluído"
	ContractVoided ContractStatus = "Cancelado"
)

// Contract binds an owner, and optionally a lessee and a property, for a rental or sale.
type Contract struct {
	ID           string         `json:"id"`
	Identifier   string         `json:"identifier"`
	UserID       string         `json:"user_id"`
	Kind         ContractKind   `json:"kind"`
	Status       ContractStatus `json:"status"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
	PaymentDay   int            `json:"payment_day"`
	PaymentValue float64        `json:"payment_value"`
	Duration     int            `json:"duration"`
	OwnerID      string         `json:"owner_id"`
	LesseeID     string         `json:"lessee_id,omitempty"`
	RealEstateID string         `json:"real_estate_id,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
