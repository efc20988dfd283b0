package handlers

import (
	"net/http"

	"github.com/jusunglee/yaleconv/internal/i18n"
	"github.com/jusunglee/yaleconv/internal/yale"
)

type referenceSection struct {
	Title   string                `json:"title"`
	Entries []yale.ReferenceEntry `json:"entries"`
}

type referenceResponse struct {
	Sections []referenceSection `json:"sections"`
	Note     string             `json:"note"`
}

// Reference serves the jamo table, titled in the language given by ?lang=.
func Reference(w http.ResponseWriter, r *http.Request) {
	labels := i18n.For(i18n.Parse(r.URL.Query().Get("lang")))
	ref := yale.Reference()
	writeJSON(w, http.StatusOK, referenceResponse{
		Sections: []referenceSection{
			{Title: labels.OnsetTitle, Entries: ref.Onset},
			{Title: labels.NucleusTitle, Entries: ref.Nucleus},
			{Title: labels.CodaTitle, Entries: ref.Coda},
		},
		Note: labels.SilentOnsetNote,
	})
}

type labelsResponse struct {
	Lang   i18n.Lang   `json:"lang"`
	Labels i18n.Labels `json:"labels"`
}

func Labels(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Parse(r.URL.Query().Get("lang"))
	writeJSON(w, http.StatusOK, labelsResponse{Lang: lang, Labels: i18n.For(lang)})
}
