package auth

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/rowguard/core"
	"github.com/totegamma/rowguard/x/policy"
)

var tracer = otel.Tracer("auth")

// ReceiveGatewayAuthPropagation reads the requester identity propagated
// by the upstream authenticator and stores it in the request context.
// Requests without a principal header stay anonymous.
func ReceiveGatewayAuthPropagation(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.ReceiveGatewayAuthPropagation")
		defer span.End()

		principalHeader := c.Request().Header.Get(RequesterPrincipalHeader)
		attributesHeader := c.Request().Header.Get(RequesterAttributesHeader)

		if principalHeader != "" {
			requester := &core.User{
				Principal: principalHeader,
			}

			if attributesHeader != "" {
				var attributes map[string][]string
				err := json.Unmarshal([]byte(attributesHeader), &attributes)
				if err != nil {
					span.RecordError(err)
					return c.JSON(http.StatusBadRequest, echo.Map{
						"error": "invalid requester attributes",
					})
				}
				requester.Attributes = attributes
			}

			c.Set(RequesterCtxKey, requester)
			ctx = core.RequesterContext(ctx, requester)
			span.SetAttributes(attribute.String("RequesterPrincipal", requester.Principal))
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequiresAccess guards a route with a single access condition such as
// "user with admin in roles". Anonymous requesters and conditions that
// fail to parse are both rejected.
func RequiresAccess(condition string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequiresAccess")
			defer span.End()

			requester, _ := c.Get(RequesterCtxKey).(*core.User)
			if !policy.Evaluate(condition, requester) {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "you are not authorized to perform this action",
				})
			}

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
