//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"

	"github.com/guregu/null/v6"
)

// PolicyKind selects one of the static legal documents.
type PolicyKind string

const (
	PolicyPrivacy PolicyKind = "privacy-policy"
	PolicyTerms   PolicyKind = "terms-and-conditions"
)

// DefaultPolicyID is the document id the platform publishes its active policies under.
const DefaultPolicyID = 1

// ParsePolicyKind reports whether v names a known policy document.
func ParsePolicyKind(v string) (PolicyKind, bool) {
	k := PolicyKind(strings.ToLower(strings.TrimSpace(v)))
	switch k {
	case PolicyPrivacy, PolicyTerms:
		return k, true
	default:
		return "", false
	}
}

// Title is the human name of the document.
func (k PolicyKind) Title() string {
	if k == PolicyTerms {
		return "Terms & Conditions"
	}
	return "Privacy Policy"
}

// Policy is a versioned legal document with HTML content.
type Policy struct {
	ID            int    `json:"id"`
	Version       string `json:"version"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	EffectiveDate string `json:"effective_date"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// PolicyResponse is the body of GET and PATCH for either policy document.
type PolicyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Policy `json:"data"`
}

// UpdatePolicyRequest is the closed partial payload for PATCH on a policy document.
type UpdatePolicyRequest struct {
	Title         null.String `json:"title,omitzero"          validate:"omitnil,min=1,max=255"`
	Content       null.String `json:"content,omitzero"        validate:"omitnil,min=1"`
	Version       null.String `json:"version,omitzero"        validate:"omitnil,max=32"`
	EffectiveDate null.String `json:"effective_date,omitzero" validate:"omitnil,datetime=2006-01-02"`
	IsActive      null.Bool   `json:"is_active,omitzero"`
}
