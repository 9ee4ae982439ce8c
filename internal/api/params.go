package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/onegoal/tracker/pkg/types"
)

// parseID reads the :id path segment as a positive integer.
func parseID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, &types.ValidationError{Field: "id", Message: "must be a positive integer"}
	}
	return id, nil
}

// parseListParams reads the shared paging and ordering query parameters,
// leaving the defaults in place for anything omitted. Bounds are checked by
// the storage layer through ListParams.Validate.
func parseListParams(c *fiber.Ctx) (types.ListParams, error) {
	p := types.NewListParams()
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, &types.ValidationError{Field: "page", Message: "must be an integer"}
		}
		p.Page = n
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, &types.ValidationError{Field: "limit", Message: "must be an integer"}
		}
		p.Limit = n
	}
	if raw := c.Query("sort"); raw != "" {
		p.Sort = raw
	}
	if raw := c.Query("order"); raw != "" {
		p.Order = raw
	}
	p.IncludeDeleted = c.QueryBool("include_deleted")
	return p, nil
}

// queryInt64 reads an optional integer query parameter; zero means absent.
func queryInt64(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return 0, &types.ValidationError{Field: name, Message: "must be a positive integer"}
	}
	return n, nil
}
