package commerce

type Product struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Installment string  `json:"installment"`
	Price       float64 `json:"price"`
}

type productImage struct {
	Data string `json:"data"`
}

// Notification asks the catalog to call back when a product becomes
// available.
type Notification struct {
	Product  string `json:"product"`
	SenderID string `json:"senderId"`
	Callback string `json:"callback"`
}

type Phone struct {
	Number string `json:"numero"`
}

type PaymentRequest struct {
	Amount    float64 `json:"amount"`
	Item      string  `json:"item"`
	ProductID string  `json:"productId"`
	Provider  string  `json:"provider"`
	UserID    string  `json:"userId"`
	Callback  string  `json:"callback"`
}

type Payment struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	CheckoutURL string `json:"checkoutUrl"`
}

type SMS struct {
	To      string `json:"to"`
	Message string `json:"message"`
}
