package domain

import "time"

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionPastDue   SubscriptionStatus = "past_due"
)

// Subscription is a user's current plan.
type Subscription struct {
	ID                 string
	Plan               string
	Status             SubscriptionStatus
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	CancelAtPeriodEnd  bool
	PriceUSD           int
}

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoicePending InvoiceStatus = "pending"
	InvoiceFailed  InvoiceStatus = "failed"
)

// Invoice is a single billing history entry.
type Invoice struct {
	ID          string
	Date        time.Time
	AmountUSD   int
	Status      InvoiceStatus
	Plan        string
	DownloadURL string
}

// Usage summarizes plan consumption for the current billing period.
type Usage struct {
	DownloadsUsed  int
	DownloadsLimit int
	StorageUsedGB  float64
	StorageLimitGB float64
}
