package synth

import (
	"github.com/google/uuid"

	"lumina/fraud-datagen/internal/config"
	"lumina/fraud-datagen/internal/domain"
)

// normalJitter is the per-axis location spread, in degrees, for legitimate
// transactions — roughly the same metro area as the user's home.
const normalJitter = 0.7

// GenerateNormal draws one plausible legitimate transaction: a uniform user
// and merchant (independently, with replacement), an amount uniform within
// the merchant category's spend range — category dominates normal pricing,
// not the user's own baseline — and a location jittered around the user's
// home. This is the baseline distribution every fraud pattern is designed
// to visibly deviate from.
func (g *Generator) GenerateNormal() (domain.Transaction, error) {
	if err := g.checkPools(); err != nil {
		return domain.Transaction{}, err
	}

	user := g.pickUser()
	merchant := g.pickMerchant()
	spend := config.SpendingRanges[merchant.Category]

	return domain.Transaction{
		TransactionID:    uuid.NewString(),
		Timestamp:        g.now(),
		UserID:           user.UserID,
		CardNumber:       g.maskedCard(),
		MerchantID:       merchant.MerchantID,
		MerchantName:     merchant.MerchantName,
		MerchantCategory: merchant.Category,
		Amount:           round2(g.uniform(spend.Min, spend.Max)),
		Currency:         domain.CurrencyUSD,
		LocationLat:      user.HomeLat + g.jitter(normalJitter),
		LocationLon:      user.HomeLon + g.jitter(normalJitter),
		DeviceID:         g.deviceID(),
		IPAddress:        g.ids.IPv4(),
		IsFraud:          false,
		FraudType:        nil,
	}, nil
}
