package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
)

// fechaFormato formato de FechaIngreso en el wire (input type="date").
const fechaFormato = "2006-01-02"

// EmpleadoUseCase casos de uso CRUD para empleados. El alta puede crear
// credenciales ligadas; la edición nunca las toca.
type EmpleadoUseCase struct {
	repo        repository.EmpleadoRepository
	usuarioRepo repository.UsuarioRepository
}

// NewEmpleadoUseCase construye el caso de uso.
func NewEmpleadoUseCase(repo repository.EmpleadoRepository, usuarioRepo repository.UsuarioRepository) *EmpleadoUseCase {
	return &EmpleadoUseCase{repo: repo, usuarioRepo: usuarioRepo}
}

// Crear da de alta un empleado y, si vienen nombreUsuario y clave, sus
// credenciales de acceso.
func (uc *EmpleadoUseCase) Crear(in dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	rol := entity.ParseRol(in.Rol)
	fecha, err := time.Parse(fechaFormato, in.FechaIngreso)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	// Valida y hashea las credenciales antes de insertar nada: un nombre de
	// usuario duplicado no debe dejar un empleado huérfano.
	conCredenciales := in.NombreUsuario != "" && in.Clave != ""
	var hash []byte
	if conCredenciales {
		existing, err := uc.usuarioRepo.FindByNombreUsuario(in.NombreUsuario)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrUsuarioYaExiste
		}
		hash, err = bcrypt.GenerateFromPassword([]byte(in.Clave), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	empleado := &entity.Empleado{
		Nombre:       in.Nombre,
		Telefono:     in.Telefono,
		Rol:          rol,
		Salario:      in.Salario,
		FechaIngreso: fecha,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(empleado); err != nil {
		return nil, err
	}

	if conCredenciales {
		usuario := &entity.Usuario{
			NombreUsuario: in.NombreUsuario,
			ClaveHash:     string(hash),
			Rol:           rol,
			IDEmpleado:    empleado.IDEmpleado,
			CreatedAt:     now,
		}
		if err := uc.usuarioRepo.Create(usuario); err != nil {
			// Revierte el alta: empleado y credenciales van juntos o no van.
			_ = uc.repo.Delete(empleado.IDEmpleado)
			return nil, err
		}
	}
	return toEmpleadoResponse(empleado), nil
}

// GetByID obtiene un empleado; nil si no existe.
func (uc *EmpleadoUseCase) GetByID(id int64) (*dto.EmpleadoResponse, error) {
	empleado, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, nil
	}
	return toEmpleadoResponse(empleado), nil
}

// Listar devuelve todos los empleados.
func (uc *EmpleadoUseCase) Listar() ([]*dto.EmpleadoResponse, error) {
	empleados, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmpleadoResponse, 0, len(empleados))
	for _, e := range empleados {
		out = append(out, toEmpleadoResponse(e))
	}
	return out, nil
}

// Actualizar modifica un empleado existente (sin tocar credenciales).
func (uc *EmpleadoUseCase) Actualizar(in dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	anterior, err := uc.repo.GetByID(in.IDEmpleado)
	if err != nil {
		return nil, err
	}
	if anterior == nil {
		return nil, domain.ErrNotFound
	}
	fecha, err := time.Parse(fechaFormato, in.FechaIngreso)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	empleado := &entity.Empleado{
		IDEmpleado:   in.IDEmpleado,
		Nombre:       in.Nombre,
		Telefono:     in.Telefono,
		Rol:          entity.ParseRol(in.Rol),
		Salario:      in.Salario,
		FechaIngreso: fecha,
		CreatedAt:    anterior.CreatedAt,
		UpdatedAt:    time.Now(),
	}
	if err := uc.repo.Update(empleado); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(empleado), nil
}

// Eliminar borra un empleado y sus credenciales asociadas.
func (uc *EmpleadoUseCase) Eliminar(id int64) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := uc.usuarioRepo.DeleteByEmpleado(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toEmpleadoResponse(e *entity.Empleado) *dto.EmpleadoResponse {
	return &dto.EmpleadoResponse{
		IDEmpleado:   e.IDEmpleado,
		Nombre:       e.Nombre,
		Telefono:     e.Telefono,
		Rol:          string(e.Rol),
		Salario:      e.Salario,
		FechaIngreso: e.FechaIngreso.Format(fechaFormato),
	}
}
