package usecases

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/doramashorts/backend/internal/application/subscription/dto"
	"github.com/doramashorts/backend/internal/shared/money"
)

// PlanConfig is the manual payment information shown to subscribers.
type PlanConfig struct {
	PriceCents      int64
	Currency        string
	PeriodDays      int
	PixKey          string
	WhatsAppContact string
	WhatsAppNumber  string
}

// GetPlanUseCase builds the payment instructions, including a prefilled
// WhatsApp link that identifies the caller to the operator.
type GetPlanUseCase struct {
	config PlanConfig
}

func NewGetPlanUseCase(config PlanConfig) *GetPlanUseCase {
	if config.PeriodDays <= 0 {
		config.PeriodDays = 30
	}
	return &GetPlanUseCase{config: config}
}

func (uc *GetPlanUseCase) Execute(userEmail string) *dto.PlanDTO {
	price := money.Format(uc.config.PriceCents, uc.config.Currency)

	return &dto.PlanDTO{
		PriceCents:      uc.config.PriceCents,
		PriceFormatted:  price,
		Currency:        uc.config.Currency,
		PeriodDays:      uc.config.PeriodDays,
		PixKey:          uc.config.PixKey,
		WhatsAppContact: uc.config.WhatsAppContact,
		WhatsAppLink:    uc.whatsAppLink(price, userEmail),
	}
}

func (uc *GetPlanUseCase) whatsAppLink(price, email string) string {
	if uc.config.WhatsAppNumber == "" {
		return ""
	}
	text := fmt.Sprintf("Olá! Fiz o PIX de %s para ativar meu plano premium.", price)
	if email != "" {
		text += " Meu email: " + email
	}
	return "https://wa.me/" + uc.config.WhatsAppNumber + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
