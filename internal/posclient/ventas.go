package posclient

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
)

// VentasService registro y consulta de ventas desde el terminal.
type VentasService struct {
	cliente *Cliente
	log     zerolog.Logger
}

// NewVentasService construye el servicio.
func NewVentasService(cliente *Cliente, log zerolog.Logger) *VentasService {
	return &VentasService{cliente: cliente, log: log}
}

// Registrar envía la venta al backend y devuelve la cabecera registrada.
func (s *VentasService) Registrar(ctx context.Context, in dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	var resp dto.VentaResponse
	if err := s.cliente.Post(ctx, "/Ventas/Registrar", in, &resp); err != nil {
		s.log.Error().Err(err).Int64("idEmpleado", in.IDEmpleado).Int("lineas", len(in.Productos)).Msg("registrar venta")
		return nil, err
	}
	s.log.Info().Int64("idVenta", resp.IDVenta).Str("total", resp.Total.String()).Msg("venta registrada")
	return &resp, nil
}

// Listar trae el historial de ventas (solo administradores).
func (s *VentasService) Listar(ctx context.Context) ([]dto.VentaResponse, error) {
	var resp []dto.VentaResponse
	if err := s.cliente.Get(ctx, "/Ventas", &resp); err != nil {
		s.log.Error().Err(err).Msg("listar ventas")
		return nil, err
	}
	return resp, nil
}

// Get trae una venta con sus líneas.
func (s *VentasService) Get(ctx context.Context, id int64) (*dto.VentaConDetallesResponse, error) {
	var resp dto.VentaConDetallesResponse
	if err := s.cliente.Get(ctx, fmt.Sprintf("/Ventas/%d", id), &resp); err != nil {
		s.log.Error().Err(err).Int64("idVenta", id).Msg("obtener venta")
		return nil, err
	}
	return &resp, nil
}

// Resumen trae el total vendido por día del rango indicado (YYYY-MM-DD).
func (s *VentasService) Resumen(ctx context.Context, desde, hasta string) ([]dto.ResumenDiaResponse, error) {
	path := "/Ventas/Resumen"
	if desde != "" || hasta != "" {
		path += fmt.Sprintf("?desde=%s&hasta=%s", desde, hasta)
	}
	var resp []dto.ResumenDiaResponse
	if err := s.cliente.Get(ctx, path, &resp); err != nil {
		s.log.Error().Err(err).Msg("resumen de ventas")
		return nil, err
	}
	return resp, nil
}
