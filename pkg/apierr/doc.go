// Package apierr defines the typed errors that request handlers return and
// the single place where they are turned into HTTP responses.
//
// Every failure a client can observe maps to one Kind with a fixed status
// code and a JSON body of the form {"error": "<message>"}. Internal errors
// never expose their cause; Write logs it server-side and answers with a
// generic message.
//
//	if err := req.Validate(); err != nil {
//	    apierr.Write(w, err)
//	    return
//	}
package apierr
