package constants

// NATS subjects for domain events
const (
	SubjectTripCompleted  = "trip.completed"
	SubjectTripClaimed    = "trip.claimed"
	SubjectReceiptCreated = "receipt.created"
	SubjectUserRegistered = "user.registered"
)
