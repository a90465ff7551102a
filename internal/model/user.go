package model

// User is the demo user payload. Age is a pointer for the same reason
// Item.Price is: age 0 is valid, a missing age is not.
type User struct {
	Name string `json:"name" validate:"required"`
	Age  *int   `json:"age" validate:"required,gte=0,lte=120"`
}
