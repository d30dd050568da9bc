package types

// OrderPlacementConfirmation tells the client its order was accepted.
type OrderPlacementConfirmation struct {
	ExecutionID string
}

// OrderPlacementReject tells the client its order was refused, with a
// human readable reason.
type OrderPlacementReject struct {
	ExecutionID string
	RejectText  string
}

// OrderAdded is emitted on the order book channel when an order is
// admitted to the book.
type OrderAdded struct {
	OrderID string
}

// OrderRemoved is emitted on the order book channel when a resting order
// leaves the book, either fully executed or cancelled.
type OrderRemoved struct {
	OrderID string
}
