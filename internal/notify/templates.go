package notify

import "fmt"

// Template identifies a transactional email.
type Template string

const (
	TemplateClaimFiled    Template = "claim_filed"
	TemplateClaimReceived Template = "claim_received"
	TemplateClaimAccepted Template = "claim_accepted"
	TemplateClaimRejected Template = "claim_rejected"
	TemplateClaimExpired  Template = "claim_expired"
)

// Render produces the subject and plain-text body for a template. Unknown
// data keys are simply absent from the copy; callers fill what they have.
func Render(t Template, data map[string]string) (subject, body string, err error) {
	get := func(key string) string { return data[key] }

	switch t {
	case TemplateClaimFiled:
		subject = fmt.Sprintf("Someone claimed your item: %s", get("itemTitle"))
		body = fmt.Sprintf(
			"Hello %s,\n\n"+
				"%s has claimed the item you reported as %s:\n\n"+
				"Item: %s\n"+
				"Message: %s\n\n"+
				"To hand the item over, accept the claim:\n%s\n\n"+
				"If this claim does not look right, reject it:\n%s\n\n"+
				"These links are valid until %s. After that the claim expires and the item becomes available again.\n",
			get("ownerName"), get("claimantName"), get("itemKind"),
			get("itemTitle"), get("message"),
			get("acceptURL"), get("rejectURL"), get("expiresAt"))

	case TemplateClaimReceived:
		subject = fmt.Sprintf("Your claim was received: %s", get("itemTitle"))
		body = fmt.Sprintf(
			"Hello %s,\n\n"+
				"We received your claim for the %s item \"%s\".\n"+
				"The person who reported it has been notified and will accept or reject your claim. "+
				"You will hear from us either way.\n",
			get("claimantName"), get("itemKind"), get("itemTitle"))

	case TemplateClaimAccepted:
		subject = fmt.Sprintf("Your claim was accepted: %s", get("itemTitle"))
		body = fmt.Sprintf(
			"Hello %s,\n\n"+
				"Good news! Your claim for \"%s\" was accepted.\n\n"+
				"Contact the reporter to arrange the handoff:\n"+
				"Name: %s\n"+
				"Email: %s\n"+
				"Phone: %s\n",
			get("claimantName"), get("itemTitle"),
			get("ownerName"), get("ownerEmail"), get("ownerPhone"))

	case TemplateClaimRejected:
		subject = fmt.Sprintf("Your claim was rejected: %s", get("itemTitle"))
		body = fmt.Sprintf(
			"Hello %s,\n\n"+
				"Unfortunately your claim for \"%s\" was rejected by the reporter.\n"+
				"If you believe this item is yours, you can file a new claim with more detail.\n",
			get("claimantName"), get("itemTitle"))

	case TemplateClaimExpired:
		subject = fmt.Sprintf("Claim expired: %s", get("itemTitle"))
		body = fmt.Sprintf(
			"The claim on \"%s\" was not resolved within its validity window and has expired.\n"+
				"The item is available again and a new claim can be filed.\n",
			get("itemTitle"))

	default:
		return "", "", fmt.Errorf("unknown template %q", t)
	}
	return subject, body, nil
}
