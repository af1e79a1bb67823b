package tracker

// Occurrences computes the concrete dates a template generates in
// (after, target], stepping from the template's own date at the template's
// cadence. The template date itself is never an occurrence, and nothing past
// target is ever produced.
//
// 'after' is the template's last-expanded date; passing the zero Date means
// the template has never been expanded and every occurrence since its date
// qualifies.
func Occurrences(template Transaction, after, target Date) []Date {
	if !template.IsTemplate() || !target.After(template.Date) {
		return nil
	}
	if after.Before(template.Date) {
		after = template.Date
	}
	var dates []Date
	for n := 1; ; n++ {
		d := template.Recurrence.Step(template.Date, n)
		if d.After(target) {
			return dates
		}
		if d.After(after) {
			dates = append(dates, d)
		}
	}
}

// materialize derives the concrete transaction for one occurrence date.
// The instance carries the template's amount, type, category and description
// but is not itself recurring.
func materialize(template Transaction, on Date) Transaction {
	return Transaction{
		Amount:      template.Amount,
		Type:        template.Type,
		Category:    template.Category,
		Date:        on,
		Description: template.Description,
	}
}
