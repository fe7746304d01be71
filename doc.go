// Package rusoto provides the unified error type returned by all client
// operations: a closed set of failure variants generic over the
// service-specific error type, so callers can match on the failure category
// without knowing the union of underlying failure types.
//
// Lower-layer failures enter the envelope through typed conversion
// functions (FromDispatch, FromCredentials, FromXML, FromJSON, FromIO);
// the operation layer constructs the remaining variants explicitly after
// inspecting a buffered response (NewService, NewServiceCommon,
// NewValidation, NewUnknown).
//
//	resp, err := client.Do(ctx, req)
//	if err != nil {
//	    return rusoto.FromDispatch[ListQueuesError](err.(*request.DispatchError))
//	}
//
// Applications decide corrective action from the variant:
//
//	switch env.Kind() {
//	case rusoto.KindHTTPDispatch:
//	    // retry
//	case rusoto.KindCredentials:
//	    // re-authenticate
//	case rusoto.KindService:
//	    svcErr, _ := env.Service()
//	    // surface service fields
//	}
package rusoto
