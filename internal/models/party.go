// Package models holds the data structures produced by the report scanner.
package models

import (
	"fmt"
	"strings"
)

// PartyContext identifies the customer whose detail lines follow a party header.
type PartyContext struct {
	PartyID string `json:"party_id" yaml:"party_id"`
	Name    string `json:"name" yaml:"name"`
	Phone   string `json:"phone" yaml:"phone"`
	City    string `json:"city" yaml:"city"`
}

// NewPartyContext trims every field and rejects a context with any field empty.
func NewPartyContext(partyID, name, phone, city string) (PartyContext, error) {
	p := PartyContext{
		PartyID: strings.TrimSpace(partyID),
		Name:    strings.TrimSpace(name),
		Phone:   strings.TrimSpace(phone),
		City:    strings.TrimSpace(city),
	}
	if !p.IsComplete() {
		return PartyContext{}, fmt.Errorf("incomplete party context: %+v", p)
	}
	return p, nil
}

// IsComplete reports whether all four fields are set.
func (p PartyContext) IsComplete() bool {
	return p.PartyID != "" && p.Name != "" && p.Phone != "" && p.City != ""
}

// FormatPhone renders an area code and number as "(AA)NNNNN-NNNN".
func FormatPhone(area, prefix, suffix string) string {
	return fmt.Sprintf("(%s)%s-%s", area, prefix, suffix)
}

func (p PartyContext) String() string {
	return fmt.Sprintf("%s %s %s %s", p.PartyID, p.Name, p.Phone, p.City)
}
