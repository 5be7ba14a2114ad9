package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	apierr "github.com/mardi4nfdi/fdofacade/pkg/api/types/errors"
	xe "github.com/mardi4nfdi/fdofacade/pkg/errors"
	"github.com/mardi4nfdi/fdofacade/pkg/fdo"
	"github.com/mardi4nfdi/fdofacade/pkg/metrics"
	"github.com/mardi4nfdi/fdofacade/pkg/wikibase"
)

// MIMEApplicationLDJSON is the media type of FDO envelopes.
const MIMEApplicationLDJSON = "application/ld+json"

// GetFDOHandler responds the FDO envelope of the entity named by path parameter paramKey.
//
// # Args
//
// - client: source of entities.
//
// - tr: renders entities as envelopes.
//
// - m: records outcomes. It can be nil.
//
// - paramKey: name of the path parameter holding the identifier.
func GetFDOHandler(client wikibase.Client, tr *fdo.Translator, m *metrics.Metrics, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Param(paramKey)
		id, err := wikibase.ParseIdentifier(raw)
		if err != nil {
			m.Observe(metrics.OutcomeOf(err))
			return apierr.BadRequest(
				`identifier should be an item id, like "Q123456"`, err,
			)
		}

		ctx := c.Request().Context()
		begin := time.Now()
		entity, err := client.Fetch(ctx, id.String())
		outcome := metrics.OutcomeOf(err)
		m.ObserveFetch(outcome, time.Since(begin))
		if err != nil {
			m.Observe(outcome)
			return fetchError(id, err)
		}

		body, err := render(tr, id, entity)
		if err != nil {
			m.Observe(metrics.OutcomeInternal)
			return apierr.InternalServerError(err)
		}

		m.Observe(metrics.OutcomeOK)
		return c.Blob(http.StatusOK, MIMEApplicationLDJSON, body)
	}
}

func fetchError(id wikibase.Identifier, err error) error {
	switch {
	case errors.Is(err, wikibase.ErrInvalidIdentifier):
		return apierr.BadRequest(`identifier should be an item id, like "Q123456"`, err)
	case errors.Is(err, wikibase.ErrNotFound):
		return apierr.NotFound(fmt.Sprintf("%s is not in the knowledge graph.", id))
	case errors.Is(err, wikibase.ErrBackendTimeout):
		return apierr.GatewayTimeout("knowledge graph is slow. retry later.", err)
	case errors.Is(err, wikibase.ErrBackendUnavailable):
		return apierr.BadGateway("knowledge graph is unavailable. retry later.", err)
	default:
		return apierr.InternalServerError(xe.Wrap(err))
	}
}

// render translates and serializes the entity.
//
// Panics in translation are recovered as errors.
func render(tr *fdo.Translator, id wikibase.Identifier, entity *wikibase.Entity) (body []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			body = nil
			err = xe.WrapWithNote(
				fmt.Sprintf("rendering %s", id),
				fmt.Errorf("panic: %v", r),
			)
		}
	}()

	body, err = fdo.Marshal(tr.Translate(id, entity))
	if err != nil {
		return nil, xe.WrapWithNote(fmt.Sprintf("marshalling %s", id), err)
	}
	return body, nil
}
