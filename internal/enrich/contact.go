package enrich

import (
	"strings"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

// ContactInfo copies contactable fields off the record. A missing email
// is synthesized as info@<domain> when a website is present, marked with
// estimated provenance so downstream consumers can tell it apart from
// provider-supplied addresses.
func ContactInfo(rec model.BusinessRecord) model.ContactInfo {
	info := model.ContactInfo{
		Phone:   rec.Phone,
		Website: rec.Website,
	}

	switch {
	case rec.Email != "":
		info.Email = rec.Email
		info.EmailProvenance = model.ProvenanceExplicit
	case rec.Website != "":
		if domain := websiteDomain(rec.Website); domain != "" {
			info.Email = "info@" + domain
			info.EmailProvenance = model.ProvenanceEstimated
		}
	}

	info.HasContact = info.Phone != "" || info.Email != "" || info.Website != ""
	return info
}

// websiteDomain strips scheme, www prefix, path, and port off a website
// string, leaving the bare host.
func websiteDomain(website string) string {
	domain := strings.TrimSpace(website)
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "www.")
	if i := strings.IndexAny(domain, "/?#"); i >= 0 {
		domain = domain[:i]
	}
	if i := strings.Index(domain, ":"); i >= 0 {
		domain = domain[:i]
	}
	return domain
}
