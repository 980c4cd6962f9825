package genesys

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// page — обертка постраничного ответа API.
type page[T any] struct {
	Entities  []T `json:"entities"`
	PageCount int `json:"pageCount"`
}

// FetchAll обходит страницы коллекции (1-индексация) до pageCount и
// собирает все сущности в память: резолверам нужен полный набор.
// Неуспешная страница прерывает обход; накопленное возвращается как
// частичный результат, сама ошибка уходит в лог.
func FetchAll[T any](ctx context.Context, c *Client, path string) []T {
	var all []T

	for pageNumber := 1; ; pageNumber++ {
		url := fmt.Sprintf("%s?pageSize=%d&pageNumber=%d", path, c.pageSize, pageNumber)

		var p page[T]
		if err := c.GetJSON(ctx, url, &p); err != nil {
			c.logger.WithError(err).WithFields(logrus.Fields{
				"path": path,
				"page": pageNumber,
			}).Error("Page fetch failed, keeping partial result")
			return all
		}

		all = append(all, p.Entities...)

		if pageNumber >= p.PageCount {
			return all
		}
	}
}
