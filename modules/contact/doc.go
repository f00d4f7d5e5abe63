// Package contact serves POST /api/contact, the trust boundary of the
// contact form.
//
// Every request is validated again on the server, rendered and relayed as one
// email. Outcomes map to:
//
//	200 {"ok":true}
//	400 {"error":"Invalid JSON payload."}
//	400 {"error":"Missing required fields."}
//	400 {"error":"Invalid email format."}
//	500 {"error":"Server is missing RESEND_API_KEY."}
//	502 {"error":"Resend request failed: <relay text>"}
//
// OPTIONS answers 204 with Allow: POST, OPTIONS.
package contact
