package cmd

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/chatlift/chatlift-cli/api"
)

func TestFormatStatusTable(t *testing.T) {
	color.NoColor = true

	table := formatStatusTable(&api.PhoneNumberStatus{
		Id:                     "139913512540275",
		DisplayPhoneNumber:     "+1 555-000-1111",
		VerifiedName:           "ChatLift Demo",
		QualityRating:          "GREEN",
		CodeVerificationStatus: "VERIFIED",
	})

	assert.Contains(t, table, "+1 555-000-1111")
	assert.Contains(t, table, "ChatLift Demo")
	assert.Contains(t, table, "GREEN")
	assert.Contains(t, table, "VERIFIED")
}
