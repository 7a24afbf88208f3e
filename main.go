package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"auto_blog_generator/generator"
	"auto_blog_generator/runner"
	"auto_blog_generator/server"
	"auto_blog_generator/writer"
)

var verbose bool

func main() {
	log.SetFlags(log.LstdFlags)
	configPath := flag.String("config", "config.json", "path to optional JSON config")
	titlesPath := flag.String("titles", "", "path to titles list (overrides config)")
	promptPath := flag.String("prompt", "", "path to prompt template (overrides config)")
	outDir := flag.String("out", "", "output directory (overrides config)")
	serve := flag.Bool("serve", false, "start the preview web server instead of the batch run")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	flag.BoolVar(&verbose, "v", false, "enable info logs")
	flag.Parse()

	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg, err := writer.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *titlesPath != "" {
		cfg.TitlesPath = *titlesPath
	}
	if *promptPath != "" {
		cfg.PromptPath = *promptPath
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	llm, closeLLM, err := buildLLM(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLLM()

	template, err := runner.ReadTextFile(cfg.PromptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading prompt template: %v\n", err)
		os.Exit(1)
	}

	agent, err := generator.NewAgent(llm, generator.AgentOptions{
		PromptTemplate: template,
		BacklinkDomain: cfg.BacklinkDomain,
		MinBacklinks:   cfg.MinBacklinks,
		MaxAttempts:    cfg.MaxAttempts,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *serve {
		srv, err := server.New(agent)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting preview server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	out := writer.New(cfg.OutputDir, log.Default())
	run, err := runner.New(agent, out, cfg.Pace(), verbose, log.Default())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run.Run(context.Background(), cfg.TitlesPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error in main process: %v\n", err)
		os.Exit(1)
	}
}

func buildLLM(cfg writer.Config) (generator.LLMClient, func(), error) {
	noop := func() {}
	settings := &generator.LLMSettings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
	}

	switch cfg.LLM.Provider {
	case "gemini":
		llm, err := generator.NewGeminiLLMFromConfig(context.Background(), settings)
		if err != nil {
			return nil, noop, err
		}
		return llm, func() { _ = llm.Close() }, nil
	case "openai":
		llm, err := generator.NewOpenAILLMFromConfig(settings)
		return llm, noop, err
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible interface; base_url is required.
		if cfg.LLM.BaseURL == "" {
			return nil, noop, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		llm, err := generator.NewOpenAILLMFromConfig(settings)
		return llm, noop, err
	case "mock":
		return generator.MockLLM{}, noop, nil
	default:
		return nil, noop, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}
