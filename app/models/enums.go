package models

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// DayOfWeek defines the days of the week for batch schedules.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// EnrollmentStatus defines the lifecycle of a course enrollment.
type EnrollmentStatus string

const (
	Enrolled          EnrollmentStatus = "Enrolled"
	EnrollmentDone    EnrollmentStatus = "Completed"
	EnrollmentDropped EnrollmentStatus = "Dropped"
)

// FeeStatus defines the status of a fee summary.
type FeeStatus string

const (
	FeeActive    FeeStatus = "Active"
	FeeCancelled FeeStatus = "Cancelled"
)

// PaymentStatus defines the status of an installment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
)

// PaymentMethod defines how a receipt was paid.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "Cash"
	MethodCheque PaymentMethod = "Cheque"
	MethodUPI    PaymentMethod = "UPI"
)

// Relation defines the relationship of a contact to a student.
type Relation string

const (
	RelationSelf     Relation = "Self"
	RelationFather   Relation = "Father"
	RelationMother   Relation = "Mother"
	RelationGuardian Relation = "Guardian"
)
