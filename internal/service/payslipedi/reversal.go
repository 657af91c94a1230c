package payslipedi

import "github.com/quanamco/payroll-edi/internal/domain/payload"

// Reverser turns a document into the adjustment note that deletes it.
// Only the identification of the note and of the referenced document survive.
type Reverser struct{}

func (Reverser) DeleteRequest(p *payload.Payload) *payload.Payload {
	if p == nil {
		return nil
	}
	src := p.Clone()
	out := &payload.Payload{
		TypeNote:         payload.TypeNoteDelete,
		Sequence:         src.Sequence,
		PayrollReference: src.PayrollReference,
		Notes:            src.Notes,
		Employer:         src.Employer,
	}
	if src.Period != nil {
		out.Period = &payload.Period{IssueDate: src.Period.IssueDate}
	}
	return out
}
