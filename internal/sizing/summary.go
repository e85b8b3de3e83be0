package sizing

import "fmt"

const summaryFormat = "Hello! I tried the virtual fitting room.\nMy suggestion was: jacket %d and trousers %d.\nI would like to complete the purchase!"

// Summary renders r as the message a customer sends to a sales consultant.
func Summary(r SuitRecommendation) string {
	return fmt.Sprintf(summaryFormat, r.Jacket, r.Trousers)
}
