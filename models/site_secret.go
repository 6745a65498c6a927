package models

import "time"

// SiteSecret is one stored credential. EncryptedPassword is the combined
// lowercase hex string nonce||ciphertext; the plaintext is never persisted.
type SiteSecret struct {
	ID                string    `json:"id"`
	UserID            int64     `json:"-"`
	Website           string    `json:"website"`
	EncryptedPassword string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
}

// SiteSummary is the public projection of a SiteSecret used in listings.
type SiteSummary struct {
	ID      string `json:"id"`
	Website string `json:"website"`
}

// SitesOverview is the listing returned to the owner of the vault.
type SitesOverview struct {
	Email string        `json:"email"`
	Sites []SiteSummary `json:"sites"`
}

// Summary drops everything but the identifier and the label.
func (s SiteSecret) Summary() SiteSummary {
	return SiteSummary{ID: s.ID, Website: s.Website}
}

// TableName returns the name of the database table
// associated with the SiteSecret model.
func (s SiteSecret) TableName() string {
	return "site_secrets"
}
