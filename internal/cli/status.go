package cli

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/hms-sandbox/internal/config"
	"github.com/danieljhkim/hms-sandbox/internal/config/generator"
	"github.com/danieljhkim/hms-sandbox/internal/dist"
	"github.com/danieljhkim/hms-sandbox/internal/metastore"
	"github.com/danieljhkim/hms-sandbox/internal/service"
	"github.com/danieljhkim/hms-sandbox/internal/util"
	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command
func NewStatusCmd(configGetter func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show metastore and install state",
		Long: `Report whether the metastore port has a listener and whether the
distributions, configuration, and persisted state are in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configGetter()

			hadoop := dist.Hadoop(cfg.HadoopVersion, cfg.InstallRoot)
			hive := dist.Hive(cfg.HiveVersion, cfg.InstallRoot)
			hiveSite := filepath.Join(hive.InstallDir, "conf", "hive-site.xml")

			rows := []util.StatusTableRow{
				listenerRow(),
				installRow("hadoop "+cfg.HadoopVersion, hadoop.InstallDir),
				installRow("hive "+cfg.HiveVersion, hive.InstallDir),
				fileRow("hive-site.xml", hiveSite, "written", "missing"),
			}

			if cfg.SparkVersion != "" {
				spark := dist.Spark(cfg.SparkVersion, cfg.InstallRoot)
				sparkConf := filepath.Join(spark.InstallDir, "conf", "spark-defaults.conf")
				rows = append(rows, installRow("spark "+cfg.SparkVersion, spark.InstallDir))
				if generator.IcebergConfigured(sparkConf) {
					rows = append(rows, util.StatusTableRow{Name: "iceberg catalog", Status: "wired", Detail: sparkConf, Ok: true})
				} else {
					rows = append(rows, util.StatusTableRow{Name: "iceberg catalog", Status: "not wired", Detail: sparkConf, Ok: false})
				}
			}

			rows = append(rows, fileRow("metastore db", cfg.Paths.MetastoreDBDir(), "initialized", "absent"))

			util.StatusTable(rows)
			return nil
		},
	}

	return cmd
}

func listenerRow() util.StatusTableRow {
	pids := service.Listening(metastore.Port)
	if len(pids) > 0 {
		return util.StatusTableRow{
			Name:   "metastore",
			Status: "running",
			Detail: fmt.Sprintf("pid %d, %s", pids[0], metastore.URI()),
			Ok:     true,
		}
	}
	return util.StatusTableRow{
		Name:   "metastore",
		Status: "stopped",
		Detail: fmt.Sprintf("port %d", metastore.Port),
		Ok:     false,
	}
}

func installRow(name, dir string) util.StatusTableRow {
	if util.FileExists(dir) {
		return util.StatusTableRow{Name: name, Status: "installed", Detail: dir, Ok: true}
	}
	return util.StatusTableRow{Name: name, Status: "missing", Detail: dir, Ok: false}
}

func fileRow(name, path, present, absent string) util.StatusTableRow {
	if util.FileExists(path) {
		return util.StatusTableRow{Name: name, Status: present, Detail: path, Ok: true}
	}
	return util.StatusTableRow{Name: name, Status: absent, Detail: path, Ok: false}
}
