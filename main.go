package main

import (
	"log"

	"github.com/paystublab/analyzer/client"
	"github.com/paystublab/analyzer/config"
	"github.com/paystublab/analyzer/handler"
	"github.com/paystublab/analyzer/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.OCR.TessdataPrefix, cfg.OCR.Language, cfg.OCR.DPI)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// OCR fallback: local Tesseract unless a remote service is configured
	var fallback service.TextSource
	if cfg.OCR.RemoteURL != "" {
		log.Printf("Using remote OCR service at %s", cfg.OCR.RemoteURL)
		fallback = service.NewRemoteOCRSource(client.NewRemoteOCRClient(cfg.OCR.RemoteURL))
	} else {
		fallback = service.NewOCRSource(pdfProcessor, tesseractClient)
	}

	// Wire the acquisition pipeline: text layer first, OCR as fallback
	acquirer := service.NewTextAcquirer(
		service.NewTextLayerSource(pdfProcessor),
		fallback,
		cfg.OCR.MinTextLength,
	)

	// Initialize service layer
	paystubService := service.NewPaystubService(acquirer, pdfProcessor)

	// Initialize handler layer
	paystubHandler := handler.NewPaystubHandler(paystubService)

	// Setup Gin router
	router := handler.SetupRouter(cfg, paystubHandler)

	// Start server
	log.Printf("Starting Paystub Analyzer on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
