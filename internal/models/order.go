package models

// OrderStatus represents the fulfillment status of an order
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "Pending Payment"
	OrderStatusProcessing     OrderStatus = "Processing"
)

// PaymentStatus represents the payment status of an order
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Order represents a placed order. Product name and image are snapshots
// taken at order time and are not kept in sync with later product edits.
type Order struct {
	ID               int           `json:"id"`
	ProductID        int           `json:"productId"`
	ProductName      string        `json:"productName"`
	ProductImage     string        `json:"productImage"`
	Buyer            string        `json:"buyer"`
	Seller           string        `json:"seller"`
	Quantity         int           `json:"quantity"`
	Price            float64       `json:"price"`
	Total            float64       `json:"total"`
	Status           OrderStatus   `json:"status"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	OrderDate        string        `json:"order_date"`
	ExpectedDelivery string        `json:"expected_delivery"`
	TransactionID    string        `json:"transaction_id,omitempty"`
	Commission       float64       `json:"commission,omitempty"`
	SellerAmount     float64       `json:"seller_amount,omitempty"`
	PaymentDate      string        `json:"payment_date,omitempty"`
}

// OrderCreation represents the payload for placing an order
type OrderCreation struct {
	ProductID    *FlexInt   `json:"productId"`
	ProductName  string     `json:"productName"`
	ProductImage string     `json:"productImage"`
	Buyer        string     `json:"buyer"`
	Seller       string     `json:"seller"`
	Quantity     *FlexInt   `json:"quantity"`
	Price        *FlexFloat `json:"price"`
	Total        *FlexFloat `json:"total"`
}

// PaymentRequest represents the payload for processing a payment.
// A missing order id leaves the mutation a no-op but the payment
// response is still produced, matching the storefront's checkout flow.
type PaymentRequest struct {
	OrderID  *FlexInt   `json:"order_id"`
	Amount   *FlexFloat `json:"amount"`
	SellerID string     `json:"seller_id"`
}

// UPIUpdate represents the payload for setting a seller's UPI address
type UPIUpdate struct {
	SellerID string `json:"seller_id"`
	UPIID    string `json:"upi_id"`
}

// AdminStats holds the aggregate counters shown on the admin dashboard
type AdminStats struct {
	TotalBuyers  int     `json:"total_buyers"`
	TotalSellers int     `json:"total_sellers"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}
