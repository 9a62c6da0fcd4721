package consult

import (
	"errors"
	"strings"
)

// ErrEmptyPrescription is returned when generating a prescription with no
// items on it.
var ErrEmptyPrescription = errors.New("add at least one medicine to generate prescription")

// Prescription accumulates medicines during a consultation session and
// renders the final list. Not safe for concurrent use; one exists per
// consultation.
type Prescription struct {
	items     []PrescriptionItem
	generated bool
}

// Add appends a medicine. Any edit invalidates a previously generated
// prescription.
func (p *Prescription) Add(medicine, dosage string) PrescriptionItem {
	item := NewPrescriptionItem(medicine, dosage)
	p.items = append(p.items, item)
	p.generated = false
	return item
}

// Remove deletes the item with the given ID, if present.
func (p *Prescription) Remove(id string) {
	for i, item := range p.items {
		if item.ID == id {
			p.items = append(p.items[:i], p.items[i+1:]...)
			p.generated = false
			return
		}
	}
}

// Items returns the current medicines in insertion order.
func (p *Prescription) Items() []PrescriptionItem {
	return p.items
}

// Generate finalizes the prescription. It fails on an empty item list.
func (p *Prescription) Generate() ([]PrescriptionItem, error) {
	if len(p.items) == 0 {
		return nil, ErrEmptyPrescription
	}
	p.generated = true
	return p.items, nil
}

// Generated reports whether the current item list has been finalized.
func (p *Prescription) Generated() bool {
	return p.generated
}

// dosageUnits are the markers that identify a medication line in a
// free-text summary.
var dosageUnits = []string{"mg", "ml", "mcg", "tablet", "capsule", "drop", "syrup"}

// ExtractMedications pulls medication lines out of a free-text prescription
// summary: any non-empty line mentioning a dosage unit counts, with list
// bullets stripped.
func ExtractMedications(summary string) []string {
	var meds []string
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• \t"))
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, unit := range dosageUnits {
			if strings.Contains(lower, unit) {
				meds = append(meds, line)
				break
			}
		}
	}
	return meds
}
