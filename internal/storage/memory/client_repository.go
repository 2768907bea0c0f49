package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
)

// clientRepositoryInMemory — простая in-memory реализация ClientRepository.
type clientRepositoryInMemory struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.Client
}

// NewClientRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewClientRepository() domain.ClientRepository {
	return &clientRepositoryInMemory{items: make(map[int64]domain.Client)}
}

// List возвращает всех клиентов в порядке убывания ID.
func (r *clientRepositoryInMemory) List() ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Client, 0, len(r.items))
	for _, client := range r.items {
		result = append(result, client)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// Get возвращает клиента или ErrNotFound, если его нет.
func (r *clientRepositoryInMemory) Get(id int64) (domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.items[id]
	if !ok {
		return domain.Client{}, domain.ErrNotFound
	}
	return client, nil
}

// Create назначает ID и сохраняет клиента, проверяя уникальность email.
func (r *clientRepositoryInMemory) Create(client domain.Client) (domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(client.Email, 0) {
		return domain.Client{}, domain.ErrConflict
	}

	r.nextID++
	client.ID = r.nextID
	client.CreatedAt = time.Now().UTC()
	r.items[client.ID] = client
	return client, nil
}

// Update перезаписывает все поля клиента слитым набором значений.
func (r *clientRepositoryInMemory) Update(id int64, client domain.Client) (domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return domain.Client{}, domain.ErrNotFound
	}
	if r.emailTaken(client.Email, id) {
		return domain.Client{}, domain.ErrConflict
	}

	client.ID = id
	client.CreatedAt = current.CreatedAt
	r.items[id] = client
	return client, nil
}

// Delete удаляет клиента или возвращает ErrNotFound.
func (r *clientRepositoryInMemory) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// emailTaken проверяет занятость email другим клиентом; вызывать под мьютексом.
func (r *clientRepositoryInMemory) emailTaken(email string, selfID int64) bool {
	for _, existing := range r.items {
		if existing.ID != selfID && existing.Email == email {
			return true
		}
	}
	return false
}

var _ domain.ClientRepository = (*clientRepositoryInMemory)(nil)
