// Package caption is the client for the remote captioning service.
//
// One POST to {base}/responses per image: a fixed instructional prompt plus
// the image as a base64 data URI. The response text is taken from the
// output_text convenience field when present, otherwise the structured
// output items are scanned for a text-bearing message part.
//
// Split along these boundaries: client.go, dataurl.go, extract.go.
package caption
