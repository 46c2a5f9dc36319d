package requestdata

import (
  "context"

  "github.com/google/uuid"
)

type key struct{}

var requestDataKey key

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
  return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
  val := ctx.Value(requestDataKey)
  if rd, ok := val.(*RequestData); ok {
    return rd
  }
  return nil
}

// RequestData rides the request context. UserID is the acting user —
// until a real auth system lands this is the configured dev user id
// stamped by the middleware.
type RequestData struct {
  RequestID   uuid.UUID
  UserID      uint
}
