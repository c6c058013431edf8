package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/mo"

	"editfolio.dev/internal/models"
)

// ErrMissingField is matched by every FieldError
var ErrMissingField = errors.New("missing required field")

// FieldError names the required form field that was left empty
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrMissingField
}

// MessagingBaseURL is the deep-link host of the messaging service
const MessagingBaseURL = "https://wa.me/"

const businessPlaceholder = "N/A"

// InquiryService turns order form input into a messaging deep link
type InquiryService struct {
	content SiteProvider
}

// NewInquiryService creates a new InquiryService
func NewInquiryService(content SiteProvider) *InquiryService {
	return &InquiryService{content: content}
}

// NewInquiry builds an Inquiry from raw form values. A blank business name is
// recorded as absent. The description is kept verbatim.
func NewInquiry(name, business, budget, description string) models.Inquiry {
	inq := models.Inquiry{
		Name:        strings.TrimSpace(name),
		Budget:      strings.TrimSpace(budget),
		Description: description,
	}
	if b := strings.TrimSpace(business); b != "" {
		inq.Business = mo.Some(b)
	}
	return inq
}

// ValidateInquiry checks that every required field is present. A field holding
// only whitespace counts as missing.
func ValidateInquiry(inq models.Inquiry) error {
	switch {
	case strings.TrimSpace(inq.Name) == "":
		return &FieldError{Field: "name"}
	case strings.TrimSpace(inq.Budget) == "":
		return &FieldError{Field: "budget"}
	case strings.TrimSpace(inq.Description) == "":
		return &FieldError{Field: "description"}
	}
	return nil
}

// Message renders the fixed inquiry template
func Message(inq models.Inquiry) string {
	var b strings.Builder
	b.WriteString("*New Service Inquiry*\n")
	b.WriteString("----------------\n")
	b.WriteString("*Name:* " + inq.Name + "\n")
	b.WriteString("*Business:* " + inq.Business.OrElse(businessPlaceholder) + "\n")
	b.WriteString("*Budget:* " + inq.Budget + "\n")
	b.WriteString("*Description:* \n")
	b.WriteString(inq.Description)
	return b.String()
}

// Link validates the inquiry and returns the deep link that opens the
// messaging service with the message pre-filled
func (s *InquiryService) Link(inq models.Inquiry) (string, error) {
	if err := ValidateInquiry(inq); err != nil {
		return "", err
	}
	number := PhoneDigits(s.content.Site().Contact.WhatsApp)
	return MessagingBaseURL + number + "?text=" + EncodeComponent(Message(inq)), nil
}

// Budgets returns the brackets offered by the order form
func (s *InquiryService) Budgets() []string {
	return s.content.Site().Contact.Budgets
}

// PhoneDigits strips everything but digits, the only form the deep link accepts
func PhoneDigits(number string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
}

// componentUnescaper restores the characters a URI component may carry as is
// but QueryEscape encodes.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use as a query value. Spaces become
// %20 and the marks !'()* are left as they are.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
