package constants

// Branding
const (
	BRAND_NAME     = "Razak and Sons"
	BOOKING_PREFIX = "RS"
	CURRENCY_SIGN  = "Rs. "
)

// Payment status enum
const (
	PAYMENT_PENDING = "Pending"
	PAYMENT_PARTIAL = "Partial"
	PAYMENT_PAID    = "Paid"
)

// Conventional additional_info keys populated at intake
const (
	INFO_PRICE_PER_PERSON = "Price Per Person"
	INFO_MEAL_PREFERENCE  = "Meal Preference"
	INFO_HOTEL_GRADE      = "Hotel Grade"
	INFO_CREATED_BY       = "Created By"
	INFO_ENTRY_METHOD     = "Entry Method"

	ENTRY_DASHBOARD_FORM = "Dashboard Form"
)

// Roles
const (
	ROLE_ADMIN    = "ADMIN"
	ROLE_OPERATOR = "OPERATOR"
)

// Messages
const (
	MISSING_LOGIN_INPUT  = "Username and password are required"
	INVALID_USERNAME     = "Username does not exist"
	INVALID_PASSWORD     = "Password is incorrect"
	ACCOUNT_NOT_ACTIVE   = "Account has been deactivated"
	ERROR_INTERNAL_ERROR = "Internal server error"
	ERROR_PARSE_DATA     = "Could not read validated input"
	ERROR_CREATE         = "Could not create record"
	NOT_FOUND_RECORDS    = "No records found"
	CAN_NOT_HASH         = "Could not hash password"

	BOOKING_SAVE_FAILED = "Something went wrong while saving the booking. Nothing was recorded, please try again."
)

// Export limits
const EXPORT_MAX_BOOKINGS_DEFAULT = 500
