package form

// Request is implemented by every form payload.
//
// All payload fields are pointers: a nil field was absent from the
// submitted JSON. Which ones are logically required is decided by the
// rule list of the form, never by decoding.
type Request interface {
	Kind() FormKind
	// Override returns the caller supplied forceCode, or nil.
	Override() *int
}

// ButtonsRequest is the login/buttons demo form.
type ButtonsRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
	// Option is one of approve|reject|pending.
	Option *string `json:"option"`
	// Radio3, Platform and Dropdown are sent by the UI but never validated.
	Radio3    *string `json:"radio3"`
	Platform  *string `json:"platform"`
	Dropdown  *string `json:"dropdown"`
	ForceCode *int    `json:"forceCode"`
}

func (r *ButtonsRequest) Kind() FormKind { return Buttons }
func (r *ButtonsRequest) Override() *int { return r.ForceCode }

type CustomerRequest struct {
	Title               *string `json:"title"`
	FirstName           *string `json:"firstName"`
	LastName            *string `json:"lastName"`
	AgeRange            *int    `json:"ageRange"`
	AgreeToTerms        *bool   `json:"agreeToTerms"`
	SubscribeNewsletter *bool   `json:"subscribeNewsletter"`
	ForceCode           *int    `json:"forceCode"`
}

func (r *CustomerRequest) Kind() FormKind { return Customer }
func (r *CustomerRequest) Override() *int { return r.ForceCode }

type ProductRequest struct {
	ProductName *string `json:"productName"`
	Category    *string `json:"category"`
	SKU         *string `json:"sku"`
	Quantity    *int    `json:"quantity"`
	PriceRange  *int    `json:"priceRange"`
	InStock     *bool   `json:"inStock"`
	Featured    *bool   `json:"featured"`
	ForceCode   *int    `json:"forceCode"`
}

func (r *ProductRequest) Kind() FormKind { return Product }
func (r *ProductRequest) Override() *int { return r.ForceCode }

type EmployeeRequest struct {
	EmployeeID         *string `json:"employeeId"`
	Department         *string `json:"department"`
	Email              *string `json:"email"`
	YearsOfService     *int    `json:"yearsOfService"`
	SatisfactionRating *int    `json:"satisfactionRating"`
	RecommendCompany   *bool   `json:"recommendCompany"`
	AttendTraining     *bool   `json:"attendTraining"`
	ForceCode          *int    `json:"forceCode"`
}

func (r *EmployeeRequest) Kind() FormKind { return Employee }
func (r *EmployeeRequest) Override() *int { return r.ForceCode }
