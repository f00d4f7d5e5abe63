// Package submission drives the contact form on the visitor side.
//
// A Form owns the four fields and a small state machine:
//
//	idle ──submit──▶ submitting ──succeed──▶ succeeded
//	  │                  └──────fail──────▶ failed
//	  └──invalid──▶ failed
//
// succeeded and failed accept a new submit; Open re-arms the form to idle.
// Invalid input never reaches the Transport. Only one submission may be in
// flight; a second Submit returns ErrInFlight.
//
//	form, err := submission.New(ctx, transport, submission.WithLocale(resolver.Current))
//	form.SetField(submission.FieldName, "Ann")
//	...
//	outcome, err := form.Submit(ctx)
//	fmt.Println(outcome.State, outcome.Message)
package submission
