// Package request dispatches service requests over HTTP and buffers the
// full response for the operation layer to inspect.
//
// The client deliberately does not classify service-level errors: any
// response that arrives intact comes back as a *BufferedResponse whatever
// its status code, and the only errors it returns are *DispatchError values
// for transport-level failures (connection, timeout, I/O). Deciding what a
// non-2xx response means is the caller's job.
//
//	client, err := request.New(request.Config{
//	    Endpoint: "https://sqs.us-east-1.amazonaws.com",
//	    Retry:    request.DefaultRetryConfig(),
//	})
//
//	resp, err := client.Do(ctx, request.Request{
//	    Operation: "ListQueues",
//	    Method:    http.MethodPost,
//	    Body:      payload,
//	})
package request
