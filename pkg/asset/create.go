package asset

import (
	"encoding/json"
	"time"
)

// CreateStatusPending marks a creation request that has not been submitted on chain.
const CreateStatusPending = "pending"

// EstimatedConfirmationTime is reported to issuers with every creation request.
const EstimatedConfirmationTime = "2-5 minutes"

// CreateRequest describes a token an authorized issuer wants to mint.
type CreateRequest struct {
	Name               string      `json:"name" validate:"required,max=64"`
	Symbol             string      `json:"symbol" validate:"required,max=16"`
	TotalSupply        json.Number `json:"totalSupply" validate:"required"`
	AssetType          *Type       `json:"assetType" validate:"required"`
	TotalAssetValue    json.Number `json:"totalAssetValue" validate:"required"`
	YieldRate          json.Number `json:"yieldRate" validate:"required"`
	MaturityDate       json.Number `json:"maturityDate,omitempty"`
	Jurisdiction       string      `json:"jurisdiction" validate:"required"`
	ComplianceRequired *bool       `json:"complianceRequired,omitempty"`
}

// CreateResponse acknowledges a creation request. No token exists yet.
type CreateResponse struct {
	RequestID                 string    `json:"requestId"`
	Status                    string    `json:"status"`
	Issuer                    string    `json:"issuer"`
	Name                      string    `json:"name"`
	Symbol                    string    `json:"symbol"`
	AssetType                 Type      `json:"assetType"`
	ComplianceRequired        bool      `json:"complianceRequired"`
	Message                   string    `json:"message"`
	EstimatedConfirmationTime string    `json:"estimatedConfirmationTime"`
	CreatedAt                 time.Time `json:"createdAt"`
}
