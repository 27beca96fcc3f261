package processor

import (
	"fmt"
	"net/url"

	"github.com/NextMind-AI/shopbot-go/commerce"
	"github.com/NextMind-AI/shopbot-go/conversation"
	"github.com/NextMind-AI/shopbot-go/messenger"
)

const (
	textNotUnderstood          = "Não conseguimos entender."
	textAttachmentsNotAccepted = "No momento não aceitamos mensagens com anexo"
	textProductNotFound        = "Produto não encontrado no momento."
	textOfferNotification      = "Quer que continuemos procurando e avisamos quando encontrar?"
	textProductAvailable       = "Encontramos seu produto!"
	textAskPhone               = "Informe o telefone para cadastro."
	textInvalidPhone           = "Telefone inválido. Informe o número com DDD."
	textChoosePayment          = "Como deseja pagar?"
	textPaypalCheckout         = "Finalize o pagamento no PayPal."
	textNotificationRegistered = "Ok, avisaremos quando encontrar"
	textComeBackSoon           = "Tudo bem, volte sempre!"
	textSurvey                 = "Como você avalia seu atendimento?"
	textThanksForRating        = "Obrigado pela avaliação!"
)

func welcomeText(username string) string {
	if username == "" {
		return "Olá, seja bem vindo."
	}
	return fmt.Sprintf("Olá %s, seja bem vindo.", username)
}

func productFoundText(name string) string {
	return name + " encontrado!"
}

func existingPhoneText(number string) string {
	return fmt.Sprintf("Você possui o telefone %s cadastrado. Deseja utilizar o mesmo?", number)
}

func confirmationSMSText(username, productName string) string {
	if username == "" {
		return fmt.Sprintf("Pagamento de %s confirmado. Obrigado pela compra!", productName)
	}
	return fmt.Sprintf("Olá %s, o pagamento de %s foi confirmado. Obrigado pela compra!", username, productName)
}

func (mp *MessageProcessor) imageURL(productID string) string {
	return mp.options.ServerURL + "/image/" + url.PathEscape(productID)
}

func (mp *MessageProcessor) finishURL(userID string) string {
	return mp.options.ServerURL + "/finish?user_id=" + url.QueryEscape(userID)
}

func (mp *MessageProcessor) notificationURL() string {
	return mp.options.ServerURL + "/notification"
}

func (mp *MessageProcessor) productElement(product commerce.Product) messenger.Element {
	return messenger.Element{
		Title:    product.Name,
		Subtitle: product.Installment,
		ImageURL: mp.imageURL(product.ProductID),
		Buttons: []messenger.Button{
			{Type: messenger.ButtonPostback, Title: "Comprar", Payload: string(PostbackConfirmPurchase)},
		},
	}
}

func yesNoButtons(yes, no Postback) []messenger.Button {
	return []messenger.Button{
		{Type: messenger.ButtonPostback, Title: "Sim", Payload: string(yes)},
		{Type: messenger.ButtonPostback, Title: "Não", Payload: string(no)},
	}
}

func paymentButtons() []messenger.Button {
	return []messenger.Button{
		{Type: messenger.ButtonPostback, Title: "Cartão", Payload: string(PostbackPayCard)},
		{Type: messenger.ButtonPostback, Title: "PayPal", Payload: string(PostbackPayPaypal)},
	}
}

func surveyReplies() []messenger.QuickReply {
	return []messenger.QuickReply{
		{ContentType: "text", Title: "Ótima", Payload: SurveyGreat},
		{ContentType: "text", Title: "Boa", Payload: SurveyGood},
		{ContentType: "text", Title: "Ruim", Payload: SurveyBad},
	}
}

func (mp *MessageProcessor) receipt(state conversation.State, payment *commerce.Payment, provider string) messenger.Receipt {
	recipient := state.Username
	if recipient == "" {
		recipient = "Cliente"
	}

	return messenger.Receipt{
		RecipientName: recipient,
		OrderNumber:   payment.ID,
		Currency:      mp.options.Currency,
		PaymentMethod: provider,
		Elements: []messenger.ReceiptElement{
			{
				Title:    state.ProductName,
				Subtitle: state.ProductInstallment,
				Quantity: 1,
				Price:    state.ProductPrice,
				Currency: mp.options.Currency,
				ImageURL: mp.imageURL(state.ProductID),
			},
		},
		Summary: messenger.ReceiptSummary{TotalCost: state.ProductPrice},
	}
}
