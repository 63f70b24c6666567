package endpoints

// Endpoints groups every go-kit endpoint the router mounts.
type Endpoints struct {
	QuoteEndpoint     QuoteEndpoint
	OptimizerEndpoint OptimizerEndpoint
	EstimatorEndpoint EstimatorEndpoint
}
