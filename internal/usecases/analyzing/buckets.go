package analyzing

// bucketSet mantém acumuladores por chave preservando a ordem de primeira ocorrência
type bucketSet[K comparable, V any] struct {
	order []K
	items map[K]*V
}

func newBucketSet[K comparable, V any]() *bucketSet[K, V] {
	return &bucketSet[K, V]{
		order: make([]K, 0),
		items: make(map[K]*V),
	}
}

// get retorna o acumulador da chave, criando com init na primeira ocorrência
func (b *bucketSet[K, V]) get(key K, init func() *V) *V {
	if item, ok := b.items[key]; ok {
		return item
	}

	item := init()
	b.items[key] = item
	b.order = append(b.order, key)

	return item
}

func (b *bucketSet[K, V]) len() int {
	return len(b.order)
}

// values devolve os acumuladores na ordem de inserção
func (b *bucketSet[K, V]) values() []*V {
	values := make([]*V, 0, len(b.order))
	for _, key := range b.order {
		values = append(values, b.items[key])
	}
	return values
}
