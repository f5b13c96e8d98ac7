package client

import (
	"context"
)

// Значения наблюдателя видимости по умолчанию.
const (
	DefaultMargin    = 100.0
	DefaultThreshold = 0.1
)

// Visibility описывает одно событие видимости маркера, размещенного
// после отрисованного списка: расстояние от нижней границы видимой
// области до маркера и доля маркера, попавшая в видимую область.
type Visibility struct {
	Distance float64
	Ratio    float64
}

// Sentinel превращает события видимости маркера в вызовы подгрузки
// следующей страницы. Маркер считается видимым, когда он находится в
// пределах опережающего отступа и пересечение достигло порога. Когда
// страниц больше нет, наблюдатель бездействует и маркер можно убрать.
type Sentinel struct {
	pager     *Pager
	margin    float64
	threshold float64
}

// NewSentinel создает наблюдателя для контроллера подгрузки.
// Неположительный margin и threshold заменяются значениями по умолчанию.
func NewSentinel(pager *Pager, margin, threshold float64) *Sentinel {
	if margin <= 0 {
		margin = DefaultMargin
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Sentinel{
		pager:     pager,
		margin:    margin,
		threshold: threshold,
	}
}

// Active сообщает, имеет ли смысл продолжать наблюдение за маркером.
func (s *Sentinel) Active() bool {
	return s.pager.HasMore()
}

// Observe обрабатывает событие видимости и при выполнении всех условий
// запускает подгрузку следующей страницы. Событие игнорируется, если
// маркер вне зоны видимости, страниц больше нет или запрос уже идет.
func (s *Sentinel) Observe(ctx context.Context, v Visibility) error {
	if v.Distance > s.margin || v.Ratio < s.threshold {
		return nil
	}
	if !s.pager.HasMore() || s.pager.Loading() {
		return nil
	}
	return s.pager.LoadMore(ctx)
}
