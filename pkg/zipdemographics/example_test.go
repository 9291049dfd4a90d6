package zipdemographics_test

import (
	"errors"
	"fmt"

	"github.com/apiverve/zipdemographics-go/pkg/zipdemographics"
)

func ExampleNew() {
	// Construction fails fast when no API key is supplied.
	_, err := zipdemographics.New("")
	fmt.Println(errors.Is(err, zipdemographics.ErrMissingAPIKey))
	// Output:
	// true
}

func ExampleRequestError() {
	err := &zipdemographics.RequestError{StatusCode: 404, Message: "zip not found"}
	fmt.Println(err)

	var reqErr *zipdemographics.RequestError
	if errors.As(error(err), &reqErr) {
		fmt.Println("status:", reqErr.StatusCode)
	}
	// Output:
	// request failed: status 404: zip not found
	// status: 404
}
