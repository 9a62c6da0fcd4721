// Package consult holds the consultation-session domain values the doctor
// console works with: detected symptoms, risk scoring, prescription items,
// and follow-up scheduling.
package consult

import (
	"strings"

	"github.com/google/uuid"
)

// Risk is the overall risk level derived from detected symptoms.
type Risk string

const (
	RiskLow    Risk = "Low"
	RiskMedium Risk = "Medium"
	RiskHigh   Risk = "High"
)

// SymptomFinding is one detected symptom with its severity on a 1-10 scale.
type SymptomFinding struct {
	Name     string
	Severity int
}

// RiskLevel derives the risk from the average symptom severity:
// 7 and above is High, 4 and above is Medium, anything else Low.
func RiskLevel(findings []SymptomFinding) Risk {
	if len(findings) == 0 {
		return RiskLow
	}
	sum := 0
	for _, f := range findings {
		sum += f.Severity
	}
	avg := float64(sum) / float64(len(findings))
	switch {
	case avg >= 7:
		return RiskHigh
	case avg >= 4:
		return RiskMedium
	default:
		return RiskLow
	}
}

// PrescriptionItem is one medicine on a prescription.
type PrescriptionItem struct {
	ID       string
	Medicine string
	Dosage   string
}

// DefaultDosage is used when the doctor leaves the dosage field empty.
const DefaultDosage = "As prescribed"

// NewPrescriptionItem builds an item with a fresh ID, trimming the inputs
// and defaulting an empty dosage.
func NewPrescriptionItem(medicine, dosage string) PrescriptionItem {
	dosage = strings.TrimSpace(dosage)
	if dosage == "" {
		dosage = DefaultDosage
	}
	return PrescriptionItem{
		ID:       uuid.NewString(),
		Medicine: strings.TrimSpace(medicine),
		Dosage:   dosage,
	}
}

// Revisit is one scheduled follow-up visit.
type Revisit struct {
	ID   string
	Date string
	Time string
}

// NewRevisit builds a follow-up entry with a fresh ID.
func NewRevisit(date, timeOfDay string) Revisit {
	return Revisit{
		ID:   uuid.NewString(),
		Date: strings.TrimSpace(date),
		Time: strings.TrimSpace(timeOfDay),
	}
}
