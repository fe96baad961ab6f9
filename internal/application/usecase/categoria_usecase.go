package usecase

import (
	"time"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Crear da de alta una categoría.
func (uc *CategoriaUseCase) Crear(in dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	now := time.Now()
	categoria := &entity.Categoria{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Listar devuelve todas las categorías.
func (uc *CategoriaUseCase) Listar() ([]*dto.CategoriaResponse, error) {
	categorias, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, toCategoriaResponse(c))
	}
	return out, nil
}

// Actualizar modifica una categoría existente.
func (uc *CategoriaUseCase) Actualizar(id int64, in dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	anterior, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if anterior == nil {
		return nil, domain.ErrNotFound
	}
	categoria := &entity.Categoria{
		IDCategoria: id,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CreatedAt:   anterior.CreatedAt,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Eliminar borra una categoría; domain.ErrCategoriaEnUso si tiene productos.
func (uc *CategoriaUseCase) Eliminar(id int64) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		IDCategoria: c.IDCategoria,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
	}
}
