package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/danieljhkim/hms-sandbox/internal/config"
	"github.com/danieljhkim/hms-sandbox/internal/config/generator"
	"github.com/danieljhkim/hms-sandbox/internal/config/schema"
	"github.com/danieljhkim/hms-sandbox/internal/dist"
	envpkg "github.com/danieljhkim/hms-sandbox/internal/env"
	"github.com/danieljhkim/hms-sandbox/internal/metastore"
	"github.com/danieljhkim/hms-sandbox/internal/util"
	"github.com/spf13/cobra"
)

// readyTimeout bounds the optional --wait probe of the thrift port.
const readyTimeout = 90 * time.Second

// NewUpCmd creates the up command
func NewUpCmd(configGetter func() *config.Config) *cobra.Command {
	var withSpark bool
	var wait bool

	cmd := &cobra.Command{
		Use:   "up [clean]",
		Short: "Provision the stack and (re)start the Hive metastore",
		Long: `Provision Hadoop and Hive (and, with --spark, Spark plus the Iceberg
runtime jar), write the sandbox configuration, and restart the metastore.

The positional 'clean' directive wipes persisted state before starting and
reinitializes the embedded Derby schema. Without --spark that means the whole
state directory; with --spark only the metastore database is wiped so the
warehouse contents survive.

Examples:
  hms-sandbox up                # start against existing state
  hms-sandbox up clean          # wipe state, reinit schema, start
  hms-sandbox up --spark clean  # also provision Spark + Iceberg catalog`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clean := false
			if len(args) > 0 {
				if args[0] != "clean" {
					return fmt.Errorf("unknown directive %q (supported: clean)", args[0])
				}
				clean = true
			}

			cfg := configGetter()

			// The Spark version has no default; refuse before any download happens.
			if withSpark {
				if err := cfg.RequireSpark(); err != nil {
					return err
				}
			}

			hadoop := dist.Hadoop(cfg.HadoopVersion, cfg.InstallRoot)
			hive := dist.Hive(cfg.HiveVersion, cfg.InstallRoot)

			util.Section("install distributions")
			if err := dist.Ensure(hadoop); err != nil {
				return err
			}
			if err := dist.Ensure(hive); err != nil {
				return err
			}

			var spark dist.Distribution
			if withSpark {
				spark = dist.Spark(cfg.SparkVersion, cfg.InstallRoot)
				if err := dist.Ensure(spark); err != nil {
					return err
				}

				artifact := cfg.IcebergArtifact()
				jarName := fmt.Sprintf("%s-%s.jar", artifact, cfg.IcebergVersion)
				jarPath := filepath.Join(spark.InstallDir, "jars", jarName)
				if err := dist.EnsureJar(dist.IcebergJarURL(artifact, cfg.IcebergVersion), jarPath); err != nil {
					return err
				}
			}

			environment := envpkg.Compute(cfg)

			util.Section("write configuration")
			hiveSite := filepath.Join(hive.InstallDir, "conf", "hive-site.xml")
			derbyURL := metastore.DerbyURL(cfg.Paths.MetastoreDBDir())
			if err := generator.WriteHiveSite(schema.MetastoreSite(derbyURL), hiveSite); err != nil {
				return err
			}
			util.Log("Wrote %s", hiveSite)

			if withSpark {
				sparkConf := filepath.Join(spark.InstallDir, "conf", "spark-defaults.conf")
				props := schema.IcebergCatalog(cfg.Paths.StateDir(), cfg.Paths.WarehouseDir(), metastore.URI())
				appended, err := generator.AppendIcebergCatalog(sparkConf, props)
				if err != nil {
					return err
				}
				if appended {
					util.Log("Wired Iceberg catalog into %s", sparkConf)
				} else {
					util.Log("Iceberg catalog already present in %s, skipping", sparkConf)
				}
			}

			util.Section("restart metastore")
			sup, err := metastore.NewSupervisor(cfg, environment)
			if err != nil {
				return err
			}

			reportKill(sup.Stop())

			if clean {
				// With Spark in play only the Derby database is rebuilt, so
				// warehouse data survives catalog rewires.
				scope := metastore.ResetState
				if withSpark {
					scope = metastore.ResetDatabase
				}
				if err := sup.Reset(scope); err != nil {
					return err
				}
				if err := sup.InitSchema(); err != nil {
					return err
				}
			} else if !sup.DatabaseExists() {
				util.Warn("No metastore database at %s; run 'hms-sandbox up clean' to initialize one", cfg.Paths.MetastoreDBDir())
			}

			pid, err := sup.Launch()
			if err != nil {
				return err
			}
			util.Log("Metastore starting (pid %d), log: %s", pid, cfg.Paths.MetastoreLog())

			if wait {
				if err := sup.WaitReady(readyTimeout); err != nil {
					return err
				}
			}

			util.Success("Metastore up at %s", metastore.URI())
			return nil
		},
	}

	cmd.Flags().BoolVar(&withSpark, "spark", false, "provision Spark and wire the Iceberg catalog")
	cmd.Flags().BoolVar(&wait, "wait", false, "block until the thrift port accepts connections")

	return cmd
}
