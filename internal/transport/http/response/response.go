package response

// Message is the `{"message": "..."}` body used by acknowledgements and
// every error response on the public surface.
type Message struct {
	Message string `json:"message"`
}

func Msg(s string) Message { return Message{Message: s} }

// Fixed acknowledgement and error texts of the REST contract.
const (
	UserCreated   = "Success"
	RecipeAdded   = "Recipe Added Successfully"
	RecipeUpdated = "Recipe Updated Successfully"
	RecipeDeleted = "Recipe Deleted Successfully"

	RecipeNotFound     = "Recipe not found"
	InvalidCredentials = "Invalid Credentials"
	AuthFailed         = "Authentication failed"
	TokenNotValid      = "Token is not valid"
)
