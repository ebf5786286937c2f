// Package extraction turns a classified file into text, a title and an extra
// field for identifier assembly.
//
// Two backends implement the same Backend interface. Local parses plain text,
// HTML and OOXML office documents in-process. Remote delegates detection,
// extraction and metadata lookup to a Tika server. The backend is chosen once
// by New and then passed explicitly to every caller.
package extraction
