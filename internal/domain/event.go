package domain

// Ledger events are emitted after a request transition commits. Listeners
// translate them into notifications and push delivery; the ledger itself
// never talks to a transport.

type RequestCreated struct {
	Request ProductRequest
}

type RequestAccepted struct {
	Request ProductRequest
}

type RequestRejected struct {
	Request ProductRequest
}

type RequestCancelled struct {
	Request ProductRequest
}
