package rules

import (
	"strings"
	"testing"

	"banquet/models"
)

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Fatalf("default configuration must validate, got %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.RulesConfiguration)
		wantMsg string
	}{
		{"tip split not 100", func(c *models.RulesConfiguration) {
			c.PrivateDinnerPay.ChefTipPercent = 70
			c.PrivateDinnerPay.AssistantTipPercent = 40
		}, "tip split"},
		{"ownership split not 100", func(c *models.RulesConfiguration) {
			c.PrivateDinnerPay.OwnerSharePercent = 30
			c.PrivateDinnerPay.PartnerSharePercent = 30
		}, "ownership split"},
		{"payout split not 100", func(c *models.RulesConfiguration) {
			c.PrivateDinnerPay.MonthlyPayoutPercent = 10
			c.PrivateDinnerPay.MonthlyRetainedPercent = 10
		}, "monthly payout split"},
		{"percent above 100", func(c *models.RulesConfiguration) {
			c.PrivateDinnerPay.ChefTipPercent = 130
			c.PrivateDinnerPay.AssistantTipPercent = -30
		}, "between 0 and 100"},
		{"addon min above max", func(c *models.RulesConfiguration) {
			c.Pricing.PremiumAddOnMinPerGuest = 30
			c.Pricing.PremiumAddOnMaxPerGuest = 10
		}, "premium add-on"},
		{"gratuity as revenue", func(c *models.RulesConfiguration) {
			c.Revenue.GratuityIsTipPool = false
		}, "tip pool"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Defaults()
			c.mutate(&cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected rejection, got nil")
			}
			if !strings.Contains(err.Error(), c.wantMsg) {
				t.Errorf("error %q does not mention %q", err, c.wantMsg)
			}
		})
	}
}

func TestValidateToleratesRoundingToHundred(t *testing.T) {
	cfg := Defaults()
	cfg.PrivateDinnerPay.ChefTipPercent = 66.7
	cfg.PrivateDinnerPay.AssistantTipPercent = 33.3
	if err := Validate(cfg); err != nil {
		t.Errorf("66.7 + 33.3 rounds to 100 and must pass, got %v", err)
	}
}
