package health

type Input struct{}

type Output struct {
	Body Response
}

type Response struct {
	Status string `json:"status" example:"OK" doc:"Health status of the service"`
	// Index reports whether the document index has been loaded.
	Index string `json:"index" example:"ready" doc:"Document index state"`
}
