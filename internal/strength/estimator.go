// Package strength judges whether a password is strong enough to protect an
// account or a stored site secret.
package strength

import (
	"strings"

	passwordvalidator "github.com/wagslane/go-password-validator"

	"github.com/MKhiriev/site-vault/models"
)

// DefaultMinEntropy is the minimum entropy, in bits, of an acceptable password.
const DefaultMinEntropy = 50

// Estimator rates passwords by estimated entropy.
type Estimator struct {
	minEntropy float64
}

// NewEstimator returns an Estimator with the given threshold in bits.
// Non-positive thresholds fall back to DefaultMinEntropy.
func NewEstimator(minEntropy float64) *Estimator {
	if minEntropy <= 0 {
		minEntropy = DefaultMinEntropy
	}
	return &Estimator{minEntropy: minEntropy}
}

// Estimate reports whether password is acceptable. When it is not, Reason is
// a human readable hint without a trailing period.
func (e *Estimator) Estimate(password string) models.StrengthReport {
	if err := passwordvalidator.Validate(password, e.minEntropy); err != nil {
		return models.StrengthReport{
			Acceptable: false,
			Reason:     strings.TrimSuffix(err.Error(), "."),
		}
	}
	return models.StrengthReport{Acceptable: true}
}

// Entropy returns the estimated entropy of password in bits.
func (e *Estimator) Entropy(password string) float64 {
	return passwordvalidator.GetEntropy(password)
}
