package pets

import (
	"net/url"
	"strings"

	"patitas-eternas/internal/platform/validation"
)

// StatusAll en ?status= desactiva el filtro de estado (vista admin).
const StatusAll = "all"

// ParseListFilter arma el filtro desde la query string.
// species admite repetido (?species=dog&species=cat) o CSV. status por default es available.
func ParseListFilter(q url.Values) (ListFilter, error) {
	var f ListFilter
	errs := &validation.Error{}

	for _, raw := range q["species"] {
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			sp := Species(s)
			if sp != SpeciesDog && sp != SpeciesCat {
				errs.Add("species", "Especie no válida")
				continue
			}
			f.Species = append(f.Species, sp)
		}
	}

	if v := strings.TrimSpace(q.Get("size")); v != "" {
		sz := Size(v)
		switch sz {
		case SizeSmall, SizeMedium, SizeLarge:
			f.Size = &sz
		default:
			errs.Add("size", "Tamaño no válido")
		}
	}

	f.MinAge = parseAge(q.Get("minAge"), "minAge", errs)
	f.MaxAge = parseAge(q.Get("maxAge"), "maxAge", errs)
	if f.MinAge != nil && f.MaxAge != nil && *f.MinAge > *f.MaxAge {
		errs.Add("maxAge", "La edad máxima debe ser mayor o igual a la mínima")
	}

	switch v := strings.TrimSpace(q.Get("status")); v {
	case "":
		st := StatusAvailable
		f.Status = &st
	case StatusAll:
	default:
		st := Status(v)
		if !st.Valid() {
			errs.Add("status", "Estado no válido")
			break
		}
		f.Status = &st
	}

	if err := errs.OrNil(); err != nil {
		return ListFilter{}, err
	}
	return f, nil
}

func parseAge(raw, field string, errs *validation.Error) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, ok := validation.ParseFinite(raw)
	if !ok || v < 0 {
		errs.Add(field, "La edad debe ser un número positivo")
		return nil
	}
	return &v
}
