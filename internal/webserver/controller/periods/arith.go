package periods

import (
	"errors"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/nanoperiod/internal/period"
)

type arithRequest struct {
	Op string      `json:"op"`
	A  period.Null `json:"a"`
	B  period.Null `json:"b"`
	K  *float64    `json:"k"`
}

// Arith combines periods. Missing operands, sent as null, give a null result.
func (h *Controller) Arith(c *fiber.Ctx) error {
	req := arithRequest{}
	if err := c.BodyParser(&req); err != nil {
		var parseErr *period.ParseError
		if errors.As(err, &parseErr) {
			return err
		}
		return fiber.ErrBadRequest
	}

	var (
		res period.Null
		err error
	)

	switch req.Op {
	case "add":
		res = req.A.Add(req.B)
	case "sub":
		res = req.A.Sub(req.B)
	case "neg":
		res = req.A.Neg()
	case "mul":
		if req.K == nil {
			return fiber.ErrBadRequest
		}
		if k, ok := integral(*req.K); ok {
			res = req.A.Scale(k)
		} else {
			res = req.A.ScaleFloat(*req.K)
		}
	case "div":
		if req.K == nil {
			return fiber.ErrBadRequest
		}
		if k, ok := integral(*req.K); ok {
			res, err = req.A.Div(k)
		} else {
			res, err = req.A.DivFloat(*req.K)
		}
	case "equal":
		equal, valid := req.A.Equal(req.B)
		if !valid {
			return c.JSON(fiber.Map{"equal": nil})
		}
		return c.JSON(fiber.Map{"equal": equal})
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Unknown operation")
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"result": res})
}

func integral(k float64) (int64, bool) {
	if k != math.Trunc(k) || k < math.MinInt64 || k >= math.MaxInt64 {
		return 0, false
	}
	return int64(k), true
}
