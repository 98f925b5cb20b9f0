package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/grbpwr-stats/internal/auth/jwt"
	"github.com/jekabolt/grbpwr-stats/internal/dependency"
	"github.com/jekabolt/grbpwr-stats/internal/dto"
	"github.com/jekabolt/grbpwr-stats/internal/entity"
	gerr "github.com/jekabolt/grbpwr-stats/internal/errors"
)

// ShopGate authenticates the bearer token verified by jwtauth.Verifier and
// resolves the shop the caller acts for. The shop claim wins, otherwise the
// token subject is looked up as a shop owner.
func ShopGate(shops dependency.Shops) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, claims, err := jwtauth.FromContext(ctx)
			if err != nil || token == nil {
				if err == nil {
					err = gerr.ErrUnauthenticated
				}
				writeError(w, r, http.StatusUnauthorized, dto.ErrorUnauthenticated, err.Error())
				return
			}

			id := jwt.IdentityFromClaims(token.Subject(), claims)
			shopID := id.ShopID
			if shopID == "" {
				if id.Subject == "" {
					writeError(w, r, http.StatusUnauthorized, dto.ErrorUnauthenticated, "token has no subject")
					return
				}
				shop, err := shops.GetShopByOwner(ctx, id.Subject)
				switch {
				case errors.Is(err, entity.ErrShopNotFound):
					writeError(w, r, http.StatusBadRequest, dto.ErrorValidation, gerr.Message(gerr.ErrNoShop))
					return
				case err != nil:
					slog.Default().ErrorContext(ctx, "can't resolve shop of the user",
						slog.String("sub", id.Subject),
						slog.String("err", err.Error()),
					)
					writeError(w, r, http.StatusInternalServerError, dto.ErrorInternal, "can't resolve shop: "+err.Error())
					return
				}
				shopID = shop.ID
			}

			next.ServeHTTP(w, r.WithContext(WithShopID(ctx, shopID)))
		})
	}
}

// WithShopID returns a copy of ctx carrying the caller's shop id.
func WithShopID(ctx context.Context, shopID string) context.Context {
	return context.WithValue(ctx, ShopIDKey, shopID)
}

// ShopIDFromContext returns the shop resolved by ShopGate, or "".
func ShopIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ShopIDKey).(string); ok {
		return id
	}
	return ""
}

func writeError(w http.ResponseWriter, r *http.Request, status int, kind, msg string) {
	render.Status(r, status)
	render.JSON(w, r, dto.Error{Error: kind, Message: msg})
}
