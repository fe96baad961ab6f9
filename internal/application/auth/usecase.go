package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
	"github.com/wumbao/panaderia-pos/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y alta de credenciales.
type AuthUseCase struct {
	usuarioRepo  repository.UsuarioRepository
	empleadoRepo repository.EmpleadoRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, empleadoRepo repository.EmpleadoRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, empleadoRepo: empleadoRepo, jwtCfg: jwtCfg}
}

// Login verifica nombreUsuario/clave, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.FindByNombreUsuario(in.NombreUsuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ClaveHash), []byte(in.Clave)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.IDUsuario, usuario.IDEmpleado, string(usuario.Rol), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResponse{
			IDUsuario:     usuario.IDUsuario,
			NombreUsuario: usuario.NombreUsuario,
			Rol:           string(usuario.Rol),
			IDEmpleado:    usuario.IDEmpleado,
		},
	}, nil
}

// RegistrarUsuario crea credenciales para un empleado existente: hashea la
// clave con bcrypt y persiste. Devuelve ErrUsuarioYaExiste si el nombre de
// usuario está tomado y ErrNotFound si el empleado no existe.
func (uc *AuthUseCase) RegistrarUsuario(in dto.RegistrarUsuarioRequest) (*dto.UsuarioResponse, error) {
	existing, _ := uc.usuarioRepo.FindByNombreUsuario(in.NombreUsuario)
	if existing != nil {
		return nil, domain.ErrUsuarioYaExiste
	}
	empleado, err := uc.empleadoRepo.GetByID(in.IDEmpleado)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, domain.ErrNotFound
	}
	rol := entity.ParseRol(in.Rol)
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Clave), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		NombreUsuario: in.NombreUsuario,
		ClaveHash:     string(hash),
		Rol:           rol,
		IDEmpleado:    in.IDEmpleado,
		CreatedAt:     time.Now(),
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return &dto.UsuarioResponse{
		IDUsuario:     usuario.IDUsuario,
		NombreUsuario: usuario.NombreUsuario,
		Rol:           string(usuario.Rol),
		IDEmpleado:    usuario.IDEmpleado,
	}, nil
}
