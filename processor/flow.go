package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/NextMind-AI/shopbot-go/commerce"
	"github.com/NextMind-AI/shopbot-go/conversation"
	"github.com/NextMind-AI/shopbot-go/messenger"

	"github.com/rs/zerolog/log"
)

// ErrNoProduct is returned by actions that need a selected product when
// none is cached for the user.
var ErrNoProduct = errors.New("no product selected")

func (mp *MessageProcessor) sendWelcome(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
	return state, mp.sendText(ctx, userID, welcomeText(state.Username))
}

// searchProduct caches the first catalog match and presents it. Without a
// match it keeps the searched name so a notification can be registered.
func (mp *MessageProcessor) searchProduct(name string) step {
	return func(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
		products, err := mp.commerceClient.SearchProducts(ctx, name)
		if err != nil {
			return state, fmt.Errorf("failed to search products: %w", err)
		}

		if len(products) == 0 {
			log.Ctx(ctx).Info().Str("product", name).Msg("Product not found")
			state = withProduct(state, commerce.Product{Name: name})
			if err := mp.sendText(ctx, userID, textProductNotFound); err != nil {
				return state, err
			}
			if _, err := mp.messengerClient.SendButtonMessage(ctx, userID, textOfferNotification,
				yesNoButtons(PostbackAcceptNotification, PostbackDeclineNotification)); err != nil {
				return state, fmt.Errorf("failed to send notification offer: %w", err)
			}
			return state, nil
		}

		product := products[0]
		state = withProduct(state, product)
		if err := mp.sendText(ctx, userID, productFoundText(product.Name)); err != nil {
			return state, err
		}
		return state, mp.sendProductCard(ctx, userID, product)
	}
}

func (mp *MessageProcessor) presentAvailableProduct(productID string) step {
	return func(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
		product, err := mp.commerceClient.GetProduct(ctx, productID)
		if err != nil {
			return state, fmt.Errorf("failed to get product: %w", err)
		}

		state = withProduct(state, *product)
		if err := mp.sendText(ctx, userID, textProductAvailable); err != nil {
			return state, err
		}
		return state, mp.sendProductCard(ctx, userID, *product)
	}
}

func (mp *MessageProcessor) sendProductCard(ctx context.Context, userID string, product commerce.Product) error {
	if _, err := mp.messengerClient.SendGenericMessage(ctx, userID, mp.productElement(product)); err != nil {
		return fmt.Errorf("failed to send product card: %w", err)
	}
	return nil
}

func withProduct(state conversation.State, product commerce.Product) conversation.State {
	state.ProductID = product.ProductID
	state.ProductName = product.Name
	state.ProductInstallment = product.Installment
	state.ProductPrice = product.Price
	return state
}

// resolvePhone asks the user to confirm a registered number, or to type one
// when the registry has none.
func (mp *MessageProcessor) resolvePhone(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
	phones, err := mp.commerceClient.ListPhones(ctx, userID)
	if err != nil {
		return state, fmt.Errorf("failed to list phones: %w", err)
	}

	for _, p := range phones {
		if p.Number == "" {
			continue
		}
		state.Phone = p.Number
		if _, err := mp.messengerClient.SendButtonMessage(ctx, userID, existingPhoneText(p.Number),
			yesNoButtons(PostbackConfirmPhone, PostbackDeclinePhone)); err != nil {
			return state, fmt.Errorf("failed to send phone confirmation: %w", err)
		}
		return state, nil
	}

	return state, mp.sendText(ctx, userID, textAskPhone)
}

func (mp *MessageProcessor) confirmPhone(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
	if state.Phone == "" {
		return state, mp.sendText(ctx, userID, textAskPhone)
	}
	return mp.askPaymentMethod(ctx, userID, state)
}

func (mp *MessageProcessor) declinePhone(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
	state.Phone = ""
	return state, mp.sendText(ctx, userID, textAskPhone)
}

func (mp *MessageProcessor) registerPhone(number string) step {
	return func(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
		if err := mp.commerceClient.RegisterPhone(ctx, userID, number); err != nil {
			return state, fmt.Errorf("failed to register phone: %w", err)
		}

		log.Ctx(ctx).Info().Str("phone", number).Msg("Phone registered")
		state.Phone = number
		return state, nil
	}
}

func (mp *MessageProcessor) askPaymentMethod(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
	if _, err := mp.messengerClient.SendButtonMessage(ctx, userID, textChoosePayment, paymentButtons()); err != nil {
		return state, fmt.Errorf("failed to send payment options: %w", err)
	}
	return state, nil
}

// generateReceipt charges the cached product with provider and renders the
// receipt. PayPal payments also get a checkout link.
func (mp *MessageProcessor) generateReceipt(provider string) step {
	return func(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
		if !state.HasProduct() {
			return state, ErrNoProduct
		}

		payment, err := mp.commerceClient.CreatePayment(ctx, commerce.PaymentRequest{
			Amount:    state.ProductPrice,
			Item:      state.ProductName,
			ProductID: state.ProductID,
			Provider:  provider,
			UserID:    userID,
			Callback:  mp.finishURL(userID),
		})
		if err != nil {
			return state, fmt.Errorf("failed to create payment: %w", err)
		}

		if _, err := mp.messengerClient.SendReceiptMessage(ctx, userID, mp.receipt(state, payment, provider)); err != nil {
			return state, fmt.Errorf("failed to send receipt: %w", err)
		}

		if provider == ProviderPaypal && payment.CheckoutURL != "" {
			if _, err := mp.messengerClient.SendButtonMessage(ctx, userID, textPaypalCheckout, []messenger.Button{
				{Type: messenger.ButtonWebURL, Title: "Pagar", URL: payment.CheckoutURL},
			}); err != nil {
				return state, fmt.Errorf("failed to send checkout link: %w", err)
			}
		}
		return state, nil
	}
}

func (mp *MessageProcessor) registerNotification(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
	if state.ProductName == "" {
		return state, ErrNoProduct
	}

	err := mp.commerceClient.RegisterNotification(ctx, commerce.Notification{
		Product:  state.ProductName,
		SenderID: userID,
		Callback: mp.notificationURL(),
	})
	if err != nil {
		return state, fmt.Errorf("failed to register notification: %w", err)
	}
	return state, mp.sendText(ctx, userID, textNotificationRegistered)
}

// sendConfirmationSMS texts the cached phone. Without a phone the SMS is
// skipped.
func (mp *MessageProcessor) sendConfirmationSMS(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
	if state.Phone == "" {
		log.Ctx(ctx).Warn().Msg("No phone known, skipping confirmation SMS")
		return state, nil
	}

	err := mp.commerceClient.SendSMS(ctx, commerce.SMS{
		To:      state.Phone,
		Message: confirmationSMSText(state.Username, state.ProductName),
	})
	if err != nil {
		return state, fmt.Errorf("failed to send SMS: %w", err)
	}
	return state, nil
}

func (mp *MessageProcessor) sendSurvey(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
	if _, err := mp.messengerClient.SendQuickReplies(ctx, userID, textSurvey, surveyReplies()); err != nil {
		return state, fmt.Errorf("failed to send survey: %w", err)
	}
	return state, nil
}
